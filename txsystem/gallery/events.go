package gallery

import (
	"crypto"
	"fmt"

	abhash "github.com/artchain-org/artchain-go/hash"
	"github.com/artchain-org/artchain-go/types"
)

// Event is a record of one successful state transition. Exactly one event is
// appended per dispatched operation; rejected operations append nothing.
type Event interface {
	Label() string
}

type (
	CollectionCreated struct {
		_  struct{}           `cbor:",toarray"`
		ID types.CollectionID `json:"id,string"`
	}

	NFTCreated struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
	}

	NFTBurned struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
	}

	Transferred struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
		Recipient    types.AccountID    `json:"recipient"`
	}

	OfferCreated struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
		Price        uint64             `json:"price,string"`
		Bidder       types.AccountID    `json:"bidder"`
	}

	OfferAccepted struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
		Seller       types.AccountID    `json:"seller"`
		Bidder       types.AccountID    `json:"bidder"`
	}

	OfferCanceled struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
		Owner        types.AccountID    `json:"owner"`
		Bidder       types.AccountID    `json:"bidder"`
	}

	AppreciationReceived struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
		Amount       uint64             `json:"amount,string"`
	}

	DisplayToggled struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
		Display      bool               `json:"display"`
	}

	ArtReported struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
		Reason       ReportReason       `json:"reason"`
	}

	ArtReportAccepted struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
	}

	ArtReportCleared struct {
		_            struct{}           `cbor:",toarray"`
		CollectionID types.CollectionID `json:"collectionId,string"`
		TokenID      types.TokenID      `json:"tokenId,string"`
	}
)

func (CollectionCreated) Label() string    { return "CollectionCreated" }
func (NFTCreated) Label() string           { return "NFTCreated" }
func (NFTBurned) Label() string            { return "NFTBurned" }
func (Transferred) Label() string          { return "Transfer" }
func (OfferCreated) Label() string         { return "OfferCreated" }
func (OfferAccepted) Label() string        { return "AcceptOffer" }
func (OfferCanceled) Label() string        { return "CancelOffer" }
func (AppreciationReceived) Label() string { return "AppreciationReceived" }
func (DisplayToggled) Label() string       { return "ToggleDisplay" }
func (ArtReported) Label() string          { return "ArtReported" }
func (ArtReportAccepted) Label() string    { return "ArtReportAccepted" }
func (ArtReportCleared) Label() string     { return "ArtReportCleared" }

// EventJournal is the append-only log of emitted events. Every entry extends
// a hash chain so the journal content can be committed to with a single
// value; the host drains the journal on commit.
type EventJournal struct {
	events []Event
	root   []byte
}

func NewEventJournal() *EventJournal {
	return &EventJournal{root: abhash.Zero256}
}

func (j *EventJournal) Append(e Event) error {
	root, err := abhash.Chain(crypto.SHA256, j.root, e)
	if err != nil {
		return fmt.Errorf("extending event chain: %w", err)
	}
	j.events = append(j.events, e)
	j.root = root
	return nil
}

// Events returns the journal content in emission order. The returned slice
// is shared, callers must not modify it.
func (j *EventJournal) Events() []Event {
	return j.events
}

// Root is the hash chained over all appended events, Zero256 for an empty
// journal.
func (j *EventJournal) Root() []byte {
	return j.root
}

// Drain returns all events and resets the journal to its empty state.
func (j *EventJournal) Drain() []Event {
	events := j.events
	j.events = nil
	j.root = abhash.Zero256
	return events
}
