package gallery

import (
	"fmt"

	"github.com/artchain-org/artchain-go/cbor"
	"github.com/artchain-org/artchain-go/types"
)

// TransactionTag marks the CBOR envelope of a gallery transaction.
const TransactionTag cbor.Tag = 71

// Transaction is the wire form of one dispatched gallery operation. The
// origin is attached by the host after it has authenticated the submitter,
// it is not part of the encoded envelope.
type Transaction struct {
	_          struct{} `cbor:",toarray"`
	Type       uint16
	Attributes cbor.RawCBOR
}

func (tx *Transaction) Bytes() ([]byte, error) {
	return cbor.MarshalTaggedValue(TransactionTag, tx)
}

func DecodeTransaction(data []byte) (*Transaction, error) {
	tx := &Transaction{}
	if err := cbor.UnmarshalTaggedValue(TransactionTag, data, tx); err != nil {
		return nil, fmt.Errorf("decoding gallery transaction: %w", err)
	}
	return tx, nil
}

// NewTransaction encodes the given attributes into a dispatchable
// transaction of the given type.
func NewTransaction(txType uint16, attributes any) (*Transaction, error) {
	attr, err := cbor.Marshal(attributes)
	if err != nil {
		return nil, fmt.Errorf("encoding attributes: %w", err)
	}
	return &Transaction{Type: txType, Attributes: attr}, nil
}

// Apply decodes the transaction attributes and executes the operation on
// behalf of origin. Identifier results of creation operations are reported
// through the event journal only.
func (m *Module) Apply(origin types.Origin, tx *Transaction) error {
	if tx == nil {
		return fmt.Errorf("transaction is nil")
	}
	if err := m.apply(origin, tx); err != nil {
		m.log.WithField("type", tx.Type).WithError(err).Info("transaction rejected")
		return err
	}
	m.log.WithField("type", tx.Type).Debug("transaction applied")
	return nil
}

func (m *Module) apply(origin types.Origin, tx *Transaction) error {
	switch tx.Type {
	case TransactionTypeSetCurator:
		attr := &SetCuratorAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.SetCurator(origin, attr.Curator)
	case TransactionTypeCreateCollection:
		attr := &CreateCollectionAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		_, err := m.CreateCollection(origin, attr.Metadata, attr.ClassData)
		return err
	case TransactionTypeMint:
		attr := &MintAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		_, err := m.Mint(origin, attr.CollectionID, attr.Metadata, attr.TokenData)
		return err
	case TransactionTypeBurn:
		attr := &BurnAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.Burn(origin, attr.CollectionID, attr.TokenID)
	case TransactionTypeTransfer:
		attr := &TransferAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.Transfer(origin, attr.CollectionID, attr.TokenID, attr.Recipient)
	case TransactionTypeCreateOffer:
		attr := &CreateOfferAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.CreateOffer(origin, attr.CollectionID, attr.TokenID, attr.Price)
	case TransactionTypeAcceptOffer:
		attr := &AcceptOfferAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.AcceptOffer(origin, attr.CollectionID, attr.TokenID, attr.Bidder)
	case TransactionTypeCancelOffer:
		attr := &CancelOfferAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.CancelOffer(origin, attr.CollectionID, attr.TokenID)
	case TransactionTypeAppreciate:
		attr := &AppreciateAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.Appreciate(origin, attr.CollectionID, attr.TokenID, attr.Amount)
	case TransactionTypeToggleDisplay:
		attr := &ToggleDisplayAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.ToggleDisplay(origin, attr.CollectionID, attr.TokenID, attr.Display)
	case TransactionTypeReport:
		attr := &ReportAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.Report(origin, attr.CollectionID, attr.TokenID, attr.Reason)
	case TransactionTypeAcceptReport:
		attr := &AcceptReportAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.AcceptReport(origin, attr.CollectionID, attr.TokenID)
	case TransactionTypeClearReport:
		attr := &ClearReportAttributes{}
		if err := cbor.Unmarshal(tx.Attributes, attr); err != nil {
			return fmt.Errorf("decoding attributes: %w", err)
		}
		return m.ClearReport(origin, attr.CollectionID, attr.TokenID)
	}
	return fmt.Errorf("unknown transaction type %d", tx.Type)
}
