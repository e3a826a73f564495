/*
Package gallerystate provides deterministic in-memory reference
implementations of the collaborator interfaces the gallery partition
consumes: the asset registry, the currency ledger and the gallery's own
store. Durability and commit atomicity belong to the host ledger; these
types validate every call before mutating anything, so a failed call leaves
state untouched.
*/
package gallerystate

import (
	"bytes"

	"github.com/artchain-org/artchain-go/cbor"
	"github.com/artchain-org/artchain-go/txsystem/gallery"
	"github.com/artchain-org/artchain-go/types"
)

type tokenKey struct {
	cid types.CollectionID
	tid types.TokenID
}

// Registry is an in-memory asset registry. Collection IDs are allocated
// monotonically from 0; token IDs likewise within each collection, and the
// counters never move backwards so no identifier is ever reused.
type Registry struct {
	classes     map[types.CollectionID]*gallery.Class
	tokens      map[tokenKey]*gallery.Token
	nextClassID types.CollectionID
}

var _ gallery.AssetRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		classes: map[types.CollectionID]*gallery.Class{},
		tokens:  map[tokenKey]*gallery.Token{},
	}
}

func (r *Registry) CreateClass(owner types.AccountID, metadata []byte, data cbor.RawCBOR) (types.CollectionID, error) {
	cid := r.nextClassID
	r.nextClassID++
	r.classes[cid] = &gallery.Class{
		ID:         cid,
		ClassOwner: owner,
		Metadata:   bytes.Clone(metadata),
		Data:       bytes.Clone(data),
	}
	return cid, nil
}

func (r *Registry) Class(cid types.CollectionID) (*gallery.Class, error) {
	class, ok := r.classes[cid]
	if !ok {
		return nil, gallery.ErrCollectionNotFound
	}
	return class.Copy().(*gallery.Class), nil
}

func (r *Registry) MintToken(owner types.AccountID, cid types.CollectionID, metadata []byte, data cbor.RawCBOR) (types.TokenID, error) {
	class, ok := r.classes[cid]
	if !ok {
		return 0, gallery.ErrCollectionNotFound
	}
	tid := class.NextTokenID
	class.NextTokenID++
	class.TotalIssuance++
	r.tokens[tokenKey{cid, tid}] = &gallery.Token{
		ID:         tid,
		TokenOwner: owner,
		Metadata:   bytes.Clone(metadata),
		Data:       bytes.Clone(data),
	}
	return tid, nil
}

func (r *Registry) Token(cid types.CollectionID, tid types.TokenID) (*gallery.Token, error) {
	token, ok := r.tokens[tokenKey{cid, tid}]
	if !ok {
		return nil, gallery.ErrTokenNotFound
	}
	return token.Copy().(*gallery.Token), nil
}

func (r *Registry) BurnToken(cid types.CollectionID, tid types.TokenID) error {
	key := tokenKey{cid, tid}
	if _, ok := r.tokens[key]; !ok {
		return gallery.ErrTokenNotFound
	}
	// NextTokenID stays where it is, burned IDs are not recycled
	r.classes[cid].TotalIssuance--
	delete(r.tokens, key)
	return nil
}

func (r *Registry) TransferToken(from, to types.AccountID, cid types.CollectionID, tid types.TokenID) error {
	token, ok := r.tokens[tokenKey{cid, tid}]
	if !ok {
		return gallery.ErrTokenNotFound
	}
	if !token.TokenOwner.Eq(from) {
		return gallery.ErrMustBeTokenOwner
	}
	token.TokenOwner = to
	return nil
}
