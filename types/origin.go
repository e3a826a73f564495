package types

import (
	"errors"
)

var (
	ErrNotSigned = errors.New("origin is not a signed account")
	ErrNotRoot   = errors.New("origin is not root")
)

type originKind uint8

const (
	originSigned originKind = iota + 1
	originRoot
)

// Origin is the authenticated caller of a dispatched operation: either a
// signed account or the root/governance authority. Authentication itself
// (signature verification) is the host ledger's job, an Origin value asserts
// it already happened.
type Origin struct {
	kind   originKind
	signer AccountID
}

// Signed returns the origin of a transaction signed by the given account.
func Signed(signer AccountID) Origin {
	return Origin{kind: originSigned, signer: signer}
}

// Root returns the root/governance origin.
func Root() Origin {
	return Origin{kind: originRoot}
}

// Signer returns the signing account, or ErrNotSigned for root or
// uninitialized origins.
func (o Origin) Signer() (AccountID, error) {
	if o.kind != originSigned || o.signer.IsEmpty() {
		return AccountID{}, ErrNotSigned
	}
	return o.signer, nil
}

// EnsureRoot returns ErrNotRoot unless the origin is the root authority.
func (o Origin) EnsureRoot() error {
	if o.kind != originRoot {
		return ErrNotRoot
	}
	return nil
}
