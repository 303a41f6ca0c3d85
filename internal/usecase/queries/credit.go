package queries

import (
	"context"
	"time"

	"leadgate/internal/infra"
	"leadgate/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=credit.go -destination=../../../tests/mock/queries/credit_mock.go -package=queriesmock

type BalanceView struct {
	BusinessID uuid.UUID `json:"business_id"`
	Balance    int64     `json:"balance"`
}

type TransactionView struct {
	ID         uuid.UUID  `json:"id"`
	BusinessID uuid.UUID  `json:"business_id"`
	Delta      int64      `json:"delta"`
	Reason     string     `json:"reason"`
	Reference  *uuid.UUID `json:"reference,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CreditReadStore interface {
	// Balance fails with a NOT_FOUND repository error when the business has
	// no ledger row.
	Balance(ctx context.Context, businessID uuid.UUID) (int64, error)
	Transactions(ctx context.Context, businessID uuid.UUID, limit int32) ([]*TransactionView, error)
}

type CreditQueries interface {
	// GetBalance treats a missing ledger row as a zero balance.
	GetBalance(ctx context.Context, businessID uuid.UUID) (*BalanceView, error)
	ListTransactions(ctx context.Context, businessID uuid.UUID, limit int) ([]*TransactionView, error)
}

type creditQueriesImpl struct {
	store CreditReadStore
}

func NewCreditQueries(store CreditReadStore) CreditQueries {
	return &creditQueriesImpl{store: store}
}

func (q *creditQueriesImpl) GetBalance(ctx context.Context, businessID uuid.UUID) (*BalanceView, error) {
	balance, err := q.store.Balance(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &BalanceView{BusinessID: businessID, Balance: 0}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &BalanceView{BusinessID: businessID, Balance: balance}, nil
}

func (q *creditQueriesImpl) ListTransactions(ctx context.Context, businessID uuid.UUID, limit int) ([]*TransactionView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := q.store.Transactions(ctx, businessID, int32(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}
