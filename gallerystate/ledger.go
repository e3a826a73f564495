package gallerystate

import (
	"fmt"

	"github.com/artchain-org/artchain-go/txsystem/gallery"
	"github.com/artchain-org/artchain-go/types"
	"github.com/artchain-org/artchain-go/util"
)

type balance struct {
	free     uint64
	reserved uint64
}

// Ledger is an in-memory currency ledger tracking a free and a reserved
// balance per account. All arithmetic is overflow checked.
type Ledger struct {
	accounts map[types.AccountID]*balance
}

var _ gallery.CurrencyLedger = (*Ledger)(nil)

func NewLedger() *Ledger {
	return &Ledger{accounts: map[types.AccountID]*balance{}}
}

func (l *Ledger) account(acct types.AccountID) *balance {
	b, ok := l.accounts[acct]
	if !ok {
		b = &balance{}
		l.accounts[acct] = b
	}
	return b
}

// Deposit credits the account's free balance, it is how test fixtures and
// genesis state fund accounts.
func (l *Ledger) Deposit(acct types.AccountID, amount uint64) error {
	b := l.account(acct)
	free, ok := util.SafeAdd(b.free, amount)
	if !ok {
		return fmt.Errorf("balance overflow for account %s", acct)
	}
	b.free = free
	return nil
}

func (l *Ledger) FreeBalance(acct types.AccountID) uint64 {
	return l.account(acct).free
}

// ReservedBalance returns the total amount currently held in reservation
// for the account.
func (l *Ledger) ReservedBalance(acct types.AccountID) uint64 {
	return l.account(acct).reserved
}

func (l *Ledger) Reserve(acct types.AccountID, amount uint64) error {
	b := l.account(acct)
	free, ok := util.SafeSub(b.free, amount)
	if !ok {
		return gallery.ErrBalanceNotEnough
	}
	reserved, ok := util.SafeAdd(b.reserved, amount)
	if !ok {
		return fmt.Errorf("reservation overflow for account %s", acct)
	}
	b.free = free
	b.reserved = reserved
	return nil
}

func (l *Ledger) Unreserve(acct types.AccountID, amount uint64) uint64 {
	b := l.account(acct)
	if amount > b.reserved {
		amount = b.reserved
	}
	b.reserved -= amount
	// cannot overflow, free+reserved never exceeded uint64 on the way in
	b.free += amount
	return amount
}

func (l *Ledger) RepatriateReserved(from, to types.AccountID, amount uint64) error {
	src := l.account(from)
	reserved, ok := util.SafeSub(src.reserved, amount)
	if !ok {
		return gallery.ErrBalanceNotEnough
	}
	dst := l.account(to)
	free, ok := util.SafeAdd(dst.free, amount)
	if !ok {
		return fmt.Errorf("balance overflow for account %s", to)
	}
	src.reserved = reserved
	dst.free = free
	return nil
}

func (l *Ledger) Transfer(from, to types.AccountID, amount uint64) error {
	src := l.account(from)
	srcFree, ok := util.SafeSub(src.free, amount)
	if !ok {
		return gallery.ErrBalanceNotEnough
	}
	if from.Eq(to) {
		return nil
	}
	dst := l.account(to)
	dstFree, ok := util.SafeAdd(dst.free, amount)
	if !ok {
		return fmt.Errorf("balance overflow for account %s", to)
	}
	src.free = srcFree
	dst.free = dstFree
	return nil
}
