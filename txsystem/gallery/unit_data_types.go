package gallery

import (
	"bytes"
	"fmt"

	"github.com/artchain-org/artchain-go/cbor"
	abhash "github.com/artchain-org/artchain-go/hash"
	"github.com/artchain-org/artchain-go/types"
)

var _ UnitData = (*Class)(nil)
var _ UnitData = (*Token)(nil)
var _ UnitData = (*ExtendedInfo)(nil)
var _ UnitData = (*Offer)(nil)

// UnitData is the generic surface of the per-unit state records of the
// gallery partition.
type UnitData interface {
	Write(hasher abhash.Hasher)
	SummaryValueInput() uint64
	Copy() UnitData
	Owner() []byte
}

// ReportReason classifies a moderation report on a token. The values have no
// ordering semantics beyond identity.
type ReportReason uint8

const (
	ReportReasonNone ReportReason = iota
	ReportReasonIllegal
	ReportReasonPlagiarism
	ReportReasonDuplicate
	ReportReasonReported
)

func (r ReportReason) String() string {
	switch r {
	case ReportReasonNone:
		return "none"
	case ReportReasonIllegal:
		return "illegal"
	case ReportReasonPlagiarism:
		return "plagiarism"
	case ReportReasonDuplicate:
		return "duplicate"
	case ReportReasonReported:
		return "reported"
	}
	return fmt.Sprintf("invalid(%d)", uint8(r))
}

func (r *ReportReason) UnmarshalCBOR(data []byte) error {
	var v uint8
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	if v > uint8(ReportReasonReported) {
		return fmt.Errorf("invalid report reason %d", v)
	}
	*r = ReportReason(v)
	return nil
}

type (
	// Class is the asset registry's record of a collection.
	Class struct {
		_             struct{}           `cbor:",toarray"`
		ID            types.CollectionID `json:"id,string"`
		ClassOwner    types.AccountID    `json:"owner"`
		Metadata      []byte             `json:"metadata"`
		Data          cbor.RawCBOR       `json:"data"`
		NextTokenID   types.TokenID      `json:"nextTokenId,string"`   // in-collection token IDs are allocated from here, never reused
		TotalIssuance uint64             `json:"totalIssuance,string"` // number of live tokens in the collection
	}

	// Token is the asset registry's canonical record of a token; ownership
	// tracked here is the one source of truth.
	Token struct {
		_          struct{}        `cbor:",toarray"`
		ID         types.TokenID   `json:"id,string"`
		TokenOwner types.AccountID `json:"owner"`
		Metadata   []byte          `json:"metadata"`
		Data       cbor.RawCBOR    `json:"data"`
	}

	// ExtendedInfo is the gallery's per-token sidecar record. A missing row
	// is equivalent to the zero value, callers obtain it through
	// Module.extendedInfoOf which materializes the default.
	ExtendedInfo struct {
		_           struct{}     `cbor:",toarray"`
		DisplayFlag bool         `json:"displayFlag"`
		Report      ReportReason `json:"report"`
		Frozen      bool         `json:"frozen"` // true while an atomic swap holds exclusive custody
	}

	// Offer is a bidder's escrowed proposal to buy a token; Amount equals the
	// bidder's reservation on the currency ledger at all times.
	Offer struct {
		_      struct{} `cbor:",toarray"`
		Amount uint64   `json:"amount,string"`
	}
)

func (c *Class) Write(hasher abhash.Hasher) {
	hasher.Write(c)
}

func (c *Class) SummaryValueInput() uint64 {
	return 0
}

func (c *Class) Copy() UnitData {
	if c == nil {
		return nil
	}
	return &Class{
		ID:            c.ID,
		ClassOwner:    c.ClassOwner,
		Metadata:      bytes.Clone(c.Metadata),
		Data:          bytes.Clone(c.Data),
		NextTokenID:   c.NextTokenID,
		TotalIssuance: c.TotalIssuance,
	}
}

func (c *Class) Owner() []byte {
	return c.ClassOwner.Bytes()
}

func (t *Token) Write(hasher abhash.Hasher) {
	hasher.Write(t)
}

func (t *Token) SummaryValueInput() uint64 {
	return 0
}

func (t *Token) Copy() UnitData {
	if t == nil {
		return nil
	}
	return &Token{
		ID:         t.ID,
		TokenOwner: t.TokenOwner,
		Metadata:   bytes.Clone(t.Metadata),
		Data:       bytes.Clone(t.Data),
	}
}

func (t *Token) Owner() []byte {
	return t.TokenOwner.Bytes()
}

func (e *ExtendedInfo) Write(hasher abhash.Hasher) {
	hasher.Write(e)
}

func (e *ExtendedInfo) SummaryValueInput() uint64 {
	return 0
}

func (e *ExtendedInfo) Copy() UnitData {
	if e == nil {
		return nil
	}
	return &ExtendedInfo{
		DisplayFlag: e.DisplayFlag,
		Report:      e.Report,
		Frozen:      e.Frozen,
	}
}

func (e *ExtendedInfo) Owner() []byte {
	return nil
}

func (o *Offer) Write(hasher abhash.Hasher) {
	hasher.Write(o)
}

// SummaryValueInput is the escrowed amount, the sum over all offers equals
// the funds this partition holds in reservation.
func (o *Offer) SummaryValueInput() uint64 {
	return o.Amount
}

func (o *Offer) Copy() UnitData {
	if o == nil {
		return nil
	}
	return &Offer{Amount: o.Amount}
}

func (o *Offer) Owner() []byte {
	return nil
}
