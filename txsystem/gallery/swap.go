package gallery

import (
	"github.com/artchain-org/artchain-go/types"
)

// SwapActionWeight is the fixed resource cost the swap coordinator accounts
// for one custody action on this partition.
const SwapActionWeight uint64 = 1_000_000

// CustodyAction is the capability handed to the external atomic-swap
// coordinator. The coordinator drives the Reserve -> Claim/Cancel protocol;
// this partition never calls back into the coordinator.
type CustodyAction interface {
	// Reserve takes exclusive custody of the token for an in-progress swap.
	Reserve(source types.AccountID) error

	// Claim completes the swap by moving ownership to target. It reports
	// success with a bare boolean, the coordinator has no use for an error
	// taxonomy here.
	Claim(source, target types.AccountID) bool

	// Cancel releases custody. Fire and forget: if the token is gone or
	// source no longer owns it there is nothing to release.
	Cancel(source types.AccountID)

	// Weight is the protocol-defined cost of performing this action.
	Weight() uint64
}

// SwapAction is the gallery's custody action over one token. The embedded
// identifier pair is the wire form the coordinator ships inside its swap
// proposal.
type SwapAction struct {
	_            struct{}           `cbor:",toarray"`
	CollectionID types.CollectionID `json:"collectionId,string"`
	TokenID      types.TokenID      `json:"tokenId,string"`

	module *Module
}

var _ CustodyAction = (*SwapAction)(nil)

// NewSwapAction binds a custody action for the given token to this module.
func (m *Module) NewSwapAction(cid types.CollectionID, tid types.TokenID) *SwapAction {
	return &SwapAction{CollectionID: cid, TokenID: tid, module: m}
}

// Reserve freezes the token for the swap. Only the current owner can be the
// custody source, and a token already frozen is already claimed by another
// in-progress swap. The check and the flag write happen within one state
// transition, so two swaps can never both observe the token unfrozen.
func (a *SwapAction) Reserve(source types.AccountID) error {
	m := a.module
	token, err := m.assets.Token(a.CollectionID, a.TokenID)
	if err != nil {
		return err
	}
	if !token.TokenOwner.Eq(source) {
		return ErrMustBeTokenOwner
	}
	info := m.extendedInfoOf(a.CollectionID, a.TokenID)
	if info.Frozen {
		return ErrTokenFrozen
	}
	info.Frozen = true
	m.store.SetExtendedInfo(a.CollectionID, a.TokenID, info)
	m.log.WithFields(map[string]any{
		"collection": a.CollectionID,
		"token":      a.TokenID,
	}).Debug("token frozen for swap")
	return nil
}

// Claim transfers the token to target and ends custody. True only if the
// token still exists, source still owns it and the registry transfer
// succeeds.
func (a *SwapAction) Claim(source, target types.AccountID) bool {
	m := a.module
	token, err := m.assets.Token(a.CollectionID, a.TokenID)
	if err != nil {
		return false
	}
	if !token.TokenOwner.Eq(source) {
		return false
	}
	if err := m.assets.TransferToken(source, target, a.CollectionID, a.TokenID); err != nil {
		return false
	}
	// custody ends with the completed swap, leaving the flag set would
	// strand the token with its new owner
	info := m.extendedInfoOf(a.CollectionID, a.TokenID)
	info.Frozen = false
	m.store.SetExtendedInfo(a.CollectionID, a.TokenID, info)
	return true
}

// Cancel thaws the token if source still owns it, otherwise does nothing.
func (a *SwapAction) Cancel(source types.AccountID) {
	m := a.module
	token, err := m.assets.Token(a.CollectionID, a.TokenID)
	if err != nil {
		return
	}
	if !token.TokenOwner.Eq(source) {
		return
	}
	info := m.extendedInfoOf(a.CollectionID, a.TokenID)
	info.Frozen = false
	m.store.SetExtendedInfo(a.CollectionID, a.TokenID, info)
}

func (a *SwapAction) Weight() uint64 {
	return SwapActionWeight
}
