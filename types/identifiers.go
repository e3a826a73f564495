package types

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/artchain-org/artchain-go/cbor"
)

const (
	CollectionIDLength = 8
	TokenIDLength      = 8
	AccountIDLength    = common.AddressLength
)

type (
	// CollectionID is the globally unique identifier of a collection,
	// allocated monotonically by the asset registry and never reused.
	CollectionID uint64

	// TokenID identifies a token within its collection. The pair
	// (CollectionID, TokenID) is globally unique and never reused.
	TokenID uint64

	// AccountID is the identity of an account on the ledger.
	// The zero value means "no account" (e.g. the curator before it is set).
	AccountID common.Address
)

func (cid CollectionID) Bytes() []byte {
	b := make([]byte, CollectionIDLength)
	binary.BigEndian.PutUint64(b, uint64(cid))
	return b
}

func (cid CollectionID) String() string {
	return fmt.Sprintf("%d", uint64(cid))
}

func (tid TokenID) Bytes() []byte {
	b := make([]byte, TokenIDLength)
	binary.BigEndian.PutUint64(b, uint64(tid))
	return b
}

func (tid TokenID) String() string {
	return fmt.Sprintf("%d", uint64(tid))
}

func BytesToAccountID(b []byte) AccountID {
	return AccountID(common.BytesToAddress(b))
}

func (aid AccountID) Bytes() []byte {
	return common.Address(aid).Bytes()
}

func (aid AccountID) String() string {
	return common.Address(aid).Hex()
}

func (aid AccountID) Eq(other AccountID) bool {
	return aid == other
}

// IsEmpty reports whether the identifier is the zero value, ie no account.
func (aid AccountID) IsEmpty() bool {
	return aid == AccountID{}
}

// MarshalCBOR encodes the account as a CBOR byte string rather than the
// array-of-integers encoding Go arrays get by default.
func (aid AccountID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(aid.Bytes())
}

func (aid *AccountID) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	if len(b) != AccountIDLength {
		return fmt.Errorf("account ID length must be %d bytes, got %d bytes", AccountIDLength, len(b))
	}
	*aid = BytesToAccountID(b)
	return nil
}
