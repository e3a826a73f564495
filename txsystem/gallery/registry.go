package gallery

import (
	"github.com/artchain-org/artchain-go/cbor"
	"github.com/artchain-org/artchain-go/types"
)

type (
	// AssetRegistry is the external collection/token store which allocates
	// identifiers and tracks canonical ownership. Every call must be atomic
	// and side-effect free on failure.
	AssetRegistry interface {
		// CreateClass allocates a new collection ID and records owner as the
		// collection's owner.
		CreateClass(owner types.AccountID, metadata []byte, data cbor.RawCBOR) (types.CollectionID, error)

		// Class returns a copy of the collection record, or
		// ErrCollectionNotFound.
		Class(cid types.CollectionID) (*Class, error)

		// MintToken allocates the next token ID within the collection and
		// records owner as the token's owner.
		MintToken(owner types.AccountID, cid types.CollectionID, metadata []byte, data cbor.RawCBOR) (types.TokenID, error)

		// Token returns a copy of the token record, or ErrTokenNotFound.
		Token(cid types.CollectionID, tid types.TokenID) (*Token, error)

		// BurnToken removes the token; its ID is never reused.
		BurnToken(cid types.CollectionID, tid types.TokenID) error

		// TransferToken moves ownership from the current owner to the
		// recipient; fails with ErrMustBeTokenOwner if from is not the
		// current owner. When the caller has verified within the same state
		// transition that from owns the token, the transfer must succeed:
		// the Module relies on this after it has already moved escrowed
		// funds (see Module.AcceptOffer).
		TransferToken(from, to types.AccountID, cid types.CollectionID, tid types.TokenID) error
	}

	// CurrencyLedger is the external balance ledger with a free and a
	// reserved bucket per account. Every call must be atomic and side-effect
	// free on failure.
	CurrencyLedger interface {
		// FreeBalance returns the spendable balance of the account.
		FreeBalance(acct types.AccountID) uint64

		// Reserve moves amount from the account's free balance to its
		// reserved balance; fails with ErrBalanceNotEnough.
		Reserve(acct types.AccountID, amount uint64) error

		// Unreserve moves up to amount back from reserved to free and
		// returns the amount actually released.
		Unreserve(acct types.AccountID, amount uint64) uint64

		// RepatriateReserved moves amount from the source's reserved balance
		// into the beneficiary's free balance; fails with
		// ErrBalanceNotEnough if the reservation is smaller than amount.
		RepatriateReserved(from, to types.AccountID, amount uint64) error

		// Transfer moves amount between free balances, allowing the payer's
		// account to be fully depleted; fails with ErrBalanceNotEnough.
		Transfer(from, to types.AccountID, amount uint64) error
	}

	// Store holds the gallery partition's own state: the curator singleton,
	// the per-token ExtendedInfo sidecars and the escrow offers. Writers are
	// gated by the Module, the store itself does no authorization.
	Store interface {
		Curator() types.AccountID
		SetCurator(curator types.AccountID)

		// ExtendedInfo returns the sidecar record of the token, ok is false
		// if no record was ever written (which is equivalent to the zero
		// value, see Module.extendedInfoOf).
		ExtendedInfo(cid types.CollectionID, tid types.TokenID) (info ExtendedInfo, ok bool)
		SetExtendedInfo(cid types.CollectionID, tid types.TokenID, info ExtendedInfo)
		RemoveExtendedInfo(cid types.CollectionID, tid types.TokenID)

		Offer(cid types.CollectionID, tid types.TokenID, bidder types.AccountID) (offer Offer, ok bool)
		SetOffer(cid types.CollectionID, tid types.TokenID, bidder types.AccountID, offer Offer)
		RemoveOffer(cid types.CollectionID, tid types.TokenID, bidder types.AccountID)
	}
)
