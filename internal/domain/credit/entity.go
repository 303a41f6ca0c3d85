// Package credit models the per-business credit ledger. The ledger is the
// source of truth; the cached balance is derived from it and must always
// equal the sum of transaction deltas.
package credit

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidReason = errors.New("invalid transaction reason")
	ErrZeroDelta     = errors.New("transaction delta cannot be zero")
)

type Reason string

const (
	ReasonLeadReveal Reason = "lead_reveal"
	ReasonPurchase   Reason = "purchase"
	ReasonAdjustment Reason = "adjustment"
)

func (r Reason) String() string {
	return string(r)
}

func (r Reason) IsValid() bool {
	switch r {
	case ReasonLeadReveal, ReasonPurchase, ReasonAdjustment:
		return true
	default:
		return false
	}
}

func NewReason(s string) (Reason, error) {
	reason := Reason(s)
	if !reason.IsValid() {
		return "", ErrInvalidReason
	}
	return reason, nil
}

// Transaction is one append-only ledger entry. Negative delta spends credits,
// positive delta grants them. Reference carries the lead id for spends.
type Transaction struct {
	id         uuid.UUID
	businessID uuid.UUID
	delta      int64
	reason     Reason
	reference  *uuid.UUID
	createdAt  time.Time
}

func NewSpend(businessID uuid.UUID, amount int64, reference uuid.UUID) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	ref := reference
	return &Transaction{
		id:         uuid.New(),
		businessID: businessID,
		delta:      -amount,
		reason:     ReasonLeadReveal,
		reference:  &ref,
	}, nil
}

func NewGrant(businessID uuid.UUID, amount int64, reason Reason, reference *uuid.UUID) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !reason.IsValid() || reason == ReasonLeadReveal {
		return nil, ErrInvalidReason
	}
	return &Transaction{
		id:         uuid.New(),
		businessID: businessID,
		delta:      amount,
		reason:     reason,
		reference:  reference,
	}, nil
}

func (t *Transaction) ID() uuid.UUID         { return t.id }
func (t *Transaction) BusinessID() uuid.UUID { return t.businessID }
func (t *Transaction) Delta() int64          { return t.delta }
func (t *Transaction) Reason() Reason        { return t.reason }
func (t *Transaction) Reference() *uuid.UUID { return t.reference }
func (t *Transaction) CreatedAt() time.Time  { return t.createdAt }

func (t *Transaction) IsSpend() bool {
	return t.delta < 0
}
