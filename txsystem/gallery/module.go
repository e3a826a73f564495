/*
Package gallery implements the state-transition logic of the art gallery
partition: an NFT marketplace with escrowed offers, tipping, moderation and
atomic-swap custody over tokens grouped into collections.

The package owns the rules of the marketplace, not the canonical asset or
balance books: collections, tokens and balances live behind the AssetRegistry
and CurrencyLedger interfaces supplied by the host. Operations are applied one
at a time by the surrounding ledger; each either completes all of its storage
mutations and emits exactly one event, or rejects with a domain error having
changed nothing.
*/
package gallery

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/artchain-org/artchain-go/cbor"
	"github.com/artchain-org/artchain-go/types"
)

// Module is the gallery state machine. It is not safe for concurrent use,
// the host serializes transactions (see the package comment).
type Module struct {
	assets  AssetRegistry
	ledger  CurrencyLedger
	store   Store
	journal *EventJournal
	log     logrus.FieldLogger
}

type Option func(*Module)

// WithLogger sets the diagnostics logger. Logging never influences state.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Module) { m.log = log }
}

func NewModule(assets AssetRegistry, ledger CurrencyLedger, store Store, opts ...Option) *Module {
	defaultLog := logrus.New()
	defaultLog.SetOutput(io.Discard)

	m := &Module{
		assets:  assets,
		ledger:  ledger,
		store:   store,
		journal: NewEventJournal(),
		log:     defaultLog,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Journal returns the event journal of this module instance.
func (m *Module) Journal() *EventJournal {
	return m.journal
}

// extendedInfoOf materializes the token's sidecar record, a missing row reads
// as the zero value.
func (m *Module) extendedInfoOf(cid types.CollectionID, tid types.TokenID) ExtendedInfo {
	info, _ := m.store.ExtendedInfo(cid, tid)
	return info
}

func (m *Module) emit(e Event) error {
	if err := m.journal.Append(e); err != nil {
		return err
	}
	m.log.WithField("event", e.Label()).Debug("event emitted")
	return nil
}

// SetCurator overwrites the curator singleton. Root only; the new curator is
// not validated in any way.
func (m *Module) SetCurator(origin types.Origin, curator types.AccountID) error {
	if err := origin.EnsureRoot(); err != nil {
		return err
	}
	m.store.SetCurator(curator)
	m.log.WithField("curator", curator).Info("curator set")
	return nil
}

// CreateCollection allocates a new collection owned by the caller.
func (m *Module) CreateCollection(origin types.Origin, metadata []byte, classData cbor.RawCBOR) (types.CollectionID, error) {
	who, err := origin.Signer()
	if err != nil {
		return 0, err
	}
	cid, err := m.assets.CreateClass(who, metadata, classData)
	if err != nil {
		return 0, fmt.Errorf("creating collection: %w", err)
	}
	return cid, m.emit(CollectionCreated{ID: cid})
}

// Mint creates a new token in the collection; only the collection owner may
// mint.
func (m *Module) Mint(origin types.Origin, cid types.CollectionID, metadata []byte, tokenData cbor.RawCBOR) (types.TokenID, error) {
	who, err := origin.Signer()
	if err != nil {
		return 0, err
	}
	class, err := m.assets.Class(cid)
	if err != nil {
		return 0, err
	}
	if !class.ClassOwner.Eq(who) {
		return 0, ErrMustBeCollectionOwner
	}
	tid, err := m.assets.MintToken(who, cid, metadata, tokenData)
	if err != nil {
		return 0, fmt.Errorf("minting token: %w", err)
	}
	return tid, m.emit(NFTCreated{CollectionID: cid, TokenID: tid})
}

// Burn destroys a token. Allowed for the collection owner and the curator,
// blocked while the token is in swap custody.
func (m *Module) Burn(origin types.Origin, cid types.CollectionID, tid types.TokenID) error {
	who, err := origin.Signer()
	if err != nil {
		return err
	}
	class, err := m.assets.Class(cid)
	if err != nil {
		return err
	}
	if !class.ClassOwner.Eq(who) && !m.store.Curator().Eq(who) {
		return ErrMustBeCollectionOwnerOrCurator
	}
	if m.extendedInfoOf(cid, tid).Frozen {
		return ErrTokenFrozen
	}
	if err := m.assets.BurnToken(cid, tid); err != nil {
		return err
	}
	// the (cid, tid) pair is never allocated again, so the sidecar row
	// would be unreachable; drop it
	m.store.RemoveExtendedInfo(cid, tid)
	return m.emit(NFTBurned{CollectionID: cid, TokenID: tid})
}

// Transfer moves token ownership to the recipient. Token owner only, blocked
// while the token is in swap custody.
func (m *Module) Transfer(origin types.Origin, cid types.CollectionID, tid types.TokenID, recipient types.AccountID) error {
	who, err := origin.Signer()
	if err != nil {
		return err
	}
	token, err := m.assets.Token(cid, tid)
	if err != nil {
		return err
	}
	if !token.TokenOwner.Eq(who) {
		return ErrMustBeTokenOwner
	}
	if m.extendedInfoOf(cid, tid).Frozen {
		return ErrTokenFrozen
	}
	if err := m.assets.TransferToken(who, recipient, cid, tid); err != nil {
		return err
	}
	return m.emit(Transferred{CollectionID: cid, TokenID: tid, Recipient: recipient})
}

// CreateOffer escrows price from the bidder's balance against the token.
// A repeated offer from the same bidder replaces the previous one, the old
// reservation is released first so nothing is double-reserved.
func (m *Module) CreateOffer(origin types.Origin, cid types.CollectionID, tid types.TokenID, price uint64) error {
	who, err := origin.Signer()
	if err != nil {
		return err
	}
	if _, err := m.assets.Token(cid, tid); err != nil {
		return err
	}
	var replaced uint64
	if old, ok := m.store.Offer(cid, tid, who); ok {
		replaced = m.ledger.Unreserve(who, old.Amount)
	}
	if err := m.ledger.Reserve(who, price); err != nil {
		if replaced > 0 {
			// restore the reservation released above; cannot fail, the
			// funds were moved to the free balance in this same operation
			_ = m.ledger.Reserve(who, replaced)
		}
		return err
	}
	m.store.SetOffer(cid, tid, who, Offer{Amount: price})
	return m.emit(OfferCreated{CollectionID: cid, TokenID: tid, Price: price, Bidder: who})
}

// AcceptOffer settles the bidder's offer: the escrowed amount moves to the
// seller's free balance and token ownership moves to the bidder.
func (m *Module) AcceptOffer(origin types.Origin, cid types.CollectionID, tid types.TokenID, bidder types.AccountID) error {
	who, err := origin.Signer()
	if err != nil {
		return err
	}
	token, err := m.assets.Token(cid, tid)
	if err != nil {
		return err
	}
	if !token.TokenOwner.Eq(who) {
		return ErrMustBeTokenOwner
	}
	if m.extendedInfoOf(cid, tid).Frozen {
		return ErrTokenFrozen
	}
	offer, ok := m.store.Offer(cid, tid, bidder)
	if !ok {
		return ErrOfferNotFound
	}
	if err := m.ledger.RepatriateReserved(bidder, who, offer.Amount); err != nil {
		return fmt.Errorf("settling escrowed offer: %w", err)
	}
	m.store.RemoveOffer(cid, tid, bidder)
	if err := m.assets.TransferToken(who, bidder, cid, tid); err != nil {
		// ownership was verified above, the registry transfer cannot reject
		return fmt.Errorf("transferring sold token: %w", err)
	}
	return m.emit(OfferAccepted{CollectionID: cid, TokenID: tid, Seller: who, Bidder: bidder})
}

// CancelOffer releases the caller's own escrowed offer on the token.
func (m *Module) CancelOffer(origin types.Origin, cid types.CollectionID, tid types.TokenID) error {
	who, err := origin.Signer()
	if err != nil {
		return err
	}
	token, err := m.assets.Token(cid, tid)
	if err != nil {
		return err
	}
	offer, ok := m.store.Offer(cid, tid, who)
	if !ok {
		return ErrOfferNotFound
	}
	m.ledger.Unreserve(who, offer.Amount)
	m.store.RemoveOffer(cid, tid, who)
	return m.emit(OfferCanceled{CollectionID: cid, TokenID: tid, Owner: token.TokenOwner, Bidder: who})
}

// Appreciate tips the token's current owner directly from the caller's free
// balance; independent of offers and swap custody.
func (m *Module) Appreciate(origin types.Origin, cid types.CollectionID, tid types.TokenID, amount uint64) error {
	who, err := origin.Signer()
	if err != nil {
		return err
	}
	token, err := m.assets.Token(cid, tid)
	if err != nil {
		return err
	}
	if m.ledger.FreeBalance(who) < amount {
		return ErrBalanceNotEnough
	}
	if err := m.ledger.Transfer(who, token.TokenOwner, amount); err != nil {
		return err
	}
	return m.emit(AppreciationReceived{CollectionID: cid, TokenID: tid, Amount: amount})
}

// ToggleDisplay sets the token's display flag. Token owner only; display is
// metadata, a frozen token may still be toggled.
func (m *Module) ToggleDisplay(origin types.Origin, cid types.CollectionID, tid types.TokenID, display bool) error {
	who, err := origin.Signer()
	if err != nil {
		return err
	}
	token, err := m.assets.Token(cid, tid)
	if err != nil {
		return err
	}
	if !token.TokenOwner.Eq(who) {
		return ErrMustBeTokenOwner
	}
	info := m.extendedInfoOf(cid, tid)
	info.DisplayFlag = display
	m.store.SetExtendedInfo(cid, tid, info)
	return m.emit(DisplayToggled{CollectionID: cid, TokenID: tid, Display: display})
}

// Report files a moderation report on the token. Any signer may report.
func (m *Module) Report(origin types.Origin, cid types.CollectionID, tid types.TokenID, reason ReportReason) error {
	if _, err := origin.Signer(); err != nil {
		return err
	}
	if _, err := m.assets.Token(cid, tid); err != nil {
		return err
	}
	info := m.extendedInfoOf(cid, tid)
	info.Report = reason
	m.store.SetExtendedInfo(cid, tid, info)
	return m.emit(ArtReported{CollectionID: cid, TokenID: tid, Reason: reason})
}

// AcceptReport marks the token's report as adjudicated. Curator only.
func (m *Module) AcceptReport(origin types.Origin, cid types.CollectionID, tid types.TokenID) error {
	who, err := origin.Signer()
	if err != nil {
		return err
	}
	if _, err := m.assets.Token(cid, tid); err != nil {
		return err
	}
	if !m.store.Curator().Eq(who) {
		return ErrMustBeCurator
	}
	info := m.extendedInfoOf(cid, tid)
	info.Report = ReportReasonReported
	m.store.SetExtendedInfo(cid, tid, info)
	return m.emit(ArtReportAccepted{CollectionID: cid, TokenID: tid})
}

// ClearReport dismisses the token's report. Curator only.
func (m *Module) ClearReport(origin types.Origin, cid types.CollectionID, tid types.TokenID) error {
	who, err := origin.Signer()
	if err != nil {
		return err
	}
	if _, err := m.assets.Token(cid, tid); err != nil {
		return err
	}
	if !m.store.Curator().Eq(who) {
		return ErrMustBeCurator
	}
	info := m.extendedInfoOf(cid, tid)
	info.Report = ReportReasonNone
	m.store.SetExtendedInfo(cid, tid, info)
	return m.emit(ArtReportCleared{CollectionID: cid, TokenID: tid})
}
