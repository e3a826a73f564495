package gallery

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/artchain-org/artchain-go/gallerystate"
	"github.com/artchain-org/artchain-go/txsystem/gallery"
	"github.com/artchain-org/artchain-go/types"
)

// Fixed, valid looking account identifiers for tests.
var (
	Alice   = types.BytesToAccountID(hexutil.MustDecode("0xa11ce00000000000000000000000000000000001"))
	Bob     = types.BytesToAccountID(hexutil.MustDecode("0xb0b0000000000000000000000000000000000002"))
	Carol   = types.BytesToAccountID(hexutil.MustDecode("0xca20100000000000000000000000000000000003"))
	Curator = types.BytesToAccountID(hexutil.MustDecode("0xc02a102000000000000000000000000000000004"))
)

// Env bundles a gallery module with its reference collaborators.
type Env struct {
	Module   *gallery.Module
	Registry *gallerystate.Registry
	Ledger   *gallerystate.Ledger
	Store    *gallerystate.Store
}

// NewEnv returns a module over fresh in-memory state, with the fixture
// accounts funded with startBalance each.
func NewEnv(t *testing.T, startBalance uint64, opts ...gallery.Option) *Env {
	t.Helper()
	registry := gallerystate.NewRegistry()
	ledger := gallerystate.NewLedger()
	store := gallerystate.NewStore()
	for _, acct := range []types.AccountID{Alice, Bob, Carol, Curator} {
		if err := ledger.Deposit(acct, startBalance); err != nil {
			t.Fatal("funding fixture account:", err)
		}
	}
	return &Env{
		Module:   gallery.NewModule(registry, ledger, store, opts...),
		Registry: registry,
		Ledger:   ledger,
		Store:    store,
	}
}

// MintToken creates a collection owned by owner and mints one token in it,
// returning both identifiers.
func (e *Env) MintToken(t *testing.T, owner types.AccountID) (types.CollectionID, types.TokenID) {
	t.Helper()
	cid, err := e.Module.CreateCollection(types.Signed(owner), []byte("fixture collection"), nil)
	if err != nil {
		t.Fatal("creating fixture collection:", err)
	}
	tid, err := e.Module.Mint(types.Signed(owner), cid, []byte("fixture token"), nil)
	if err != nil {
		t.Fatal("minting fixture token:", err)
	}
	return cid, tid
}
