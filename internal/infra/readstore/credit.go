package readstore

import (
	"context"
	"errors"

	"leadgate/internal/infra"
	"leadgate/internal/infra/db"
	"leadgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreditReadStore struct {
	q db.Querier
}

func NewCreditReadStore(q db.Querier) *CreditReadStore {
	return &CreditReadStore{q: q}
}

func (r *CreditReadStore) Balance(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var balance int64
	err := r.q.QueryRow(ctx,
		`SELECT balance FROM credit_balances WHERE business_id = $1`,
		businessID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("no credit balance for business", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read credit balance", err)
	}
	return balance, nil
}

func (r *CreditReadStore) Transactions(ctx context.Context, businessID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, business_id, delta, reason, reference, created_at
		 FROM credit_transactions
		 WHERE business_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		businessID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list credit transactions", err)
	}
	defer rows.Close()

	var result []*queries.TransactionView
	for rows.Next() {
		var tx queries.TransactionView
		if err := rows.Scan(&tx.ID, &tx.BusinessID, &tx.Delta, &tx.Reason, &tx.Reference, &tx.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan credit transaction", err)
		}
		result = append(result, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate credit transactions", err)
	}

	return result, nil
}
