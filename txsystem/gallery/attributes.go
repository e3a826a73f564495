package gallery

import (
	"github.com/artchain-org/artchain-go/cbor"
	"github.com/artchain-org/artchain-go/types"
)

const (
	TransactionTypeSetCurator       uint16 = 1
	TransactionTypeCreateCollection uint16 = 2
	TransactionTypeMint             uint16 = 3
	TransactionTypeBurn             uint16 = 4
	TransactionTypeTransfer         uint16 = 5
	TransactionTypeCreateOffer      uint16 = 6
	TransactionTypeAcceptOffer      uint16 = 7
	TransactionTypeCancelOffer      uint16 = 8
	TransactionTypeAppreciate       uint16 = 9
	TransactionTypeToggleDisplay    uint16 = 10
	TransactionTypeReport           uint16 = 11
	TransactionTypeAcceptReport     uint16 = 12
	TransactionTypeClearReport      uint16 = 13
)

type (
	SetCuratorAttributes struct {
		_       struct{}        `cbor:",toarray"`
		Curator types.AccountID // the new curator; not validated in any way
	}

	CreateCollectionAttributes struct {
		_         struct{}     `cbor:",toarray"`
		Metadata  []byte       // opaque collection metadata
		ClassData cbor.RawCBOR // opaque application data attached to the collection
	}

	MintAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		Metadata     []byte       // opaque token metadata
		TokenData    cbor.RawCBOR // opaque application data attached to the token
	}

	BurnAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
	}

	TransferAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
		Recipient    types.AccountID // the new owner of the token
	}

	CreateOfferAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
		Price        uint64 // amount reserved from the bidder until acceptance or cancellation
	}

	AcceptOfferAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
		Bidder       types.AccountID // identifies which bidder's offer is accepted
	}

	CancelOfferAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
	}

	AppreciateAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
		Amount       uint64 // paid directly to the token's current owner
	}

	ToggleDisplayAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
		Display      bool
	}

	ReportAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
		Reason       ReportReason
	}

	AcceptReportAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
	}

	ClearReportAttributes struct {
		_            struct{} `cbor:",toarray"`
		CollectionID types.CollectionID
		TokenID      types.TokenID
	}
)
