package repository

import (
	"context"
	"errors"

	"leadgate/internal/domain/credit"
	"leadgate/internal/infra"
	"leadgate/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type LedgerRepository struct {
	q db.Querier
}

func NewLedgerRepository(q db.Querier) *LedgerRepository {
	return &LedgerRepository{q: q}
}

// TryDebit implements the at-most-once spend. It must run inside a
// transaction (the UoW guarantees this).
//
// Sequence, all under the balance row lock:
//  1. SELECT ... FOR UPDATE on the balance row, the per-business
//     serialization point. A missing row means the business never received
//     credits, which reads as a zero balance.
//  2. Look for an existing lead_reveal transaction for (business, reference).
//     Found means a previous attempt already charged; return its id.
//  3. Check and decrement the balance, append the ledger entry.
//
// The idempotency check happens after the lock is acquired so a concurrent
// first-time debit cannot slip between check and decrement.
func (r *LedgerRepository) TryDebit(ctx context.Context, businessID uuid.UUID, amount int64, reference uuid.UUID) (uuid.UUID, error) {
	if amount <= 0 {
		return uuid.Nil, infra.NewRepoErr("debit amount must be positive", infra.KindConditionNotMet)
	}

	const lockBalance = `
		SELECT balance FROM credit_balances
		WHERE business_id = $1
		FOR UPDATE`

	var balance int64
	err := r.q.QueryRow(ctx, lockBalance, businessID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.NewRepoErr("no credit balance", infra.KindConditionNotMet)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to lock credit balance", err)
	}

	const findExisting = `
		SELECT id FROM credit_transactions
		WHERE business_id = $1 AND reference = $2 AND reason = $3`

	var existingID uuid.UUID
	err = r.q.QueryRow(ctx, findExisting, businessID, reference, credit.ReasonLeadReveal.String()).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, infra.WrapRepoErr("failed to check existing reveal transaction", err)
	}

	if balance < amount {
		return uuid.Nil, infra.NewRepoErr("insufficient credits", infra.KindConditionNotMet)
	}

	const debit = `
		UPDATE credit_balances
		SET balance = balance - $2, updated_at = now()
		WHERE business_id = $1 AND balance >= $2`

	tag, err := r.q.Exec(ctx, debit, businessID, amount)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to debit credit balance", err)
	}
	if tag.RowsAffected() == 0 {
		// Unreachable while the row lock is held, kept as a guard against
		// callers running outside a transaction.
		return uuid.Nil, infra.NewRepoErr("insufficient credits", infra.KindConditionNotMet)
	}

	const insertTx = `
		INSERT INTO credit_transactions (id, business_id, delta, reason, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id`

	var txID uuid.UUID
	err = r.q.QueryRow(ctx, insertTx,
		uuid.New(), businessID, -amount, credit.ReasonLeadReveal.String(), reference,
	).Scan(&txID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append ledger entry", err, pgErrKind(err))
	}

	return txID, nil
}

func (r *LedgerRepository) Grant(ctx context.Context, businessID uuid.UUID, amount int64, reason credit.Reason, reference *uuid.UUID) (uuid.UUID, error) {
	if amount <= 0 {
		return uuid.Nil, infra.NewRepoErr("grant amount must be positive", infra.KindConditionNotMet)
	}

	const upsertBalance = `
		INSERT INTO credit_balances (business_id, balance, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (business_id)
		DO UPDATE SET balance = credit_balances.balance + EXCLUDED.balance, updated_at = now()`

	if _, err := r.q.Exec(ctx, upsertBalance, businessID, amount); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert credit balance", err, pgErrKind(err))
	}

	const insertTx = `
		INSERT INTO credit_transactions (id, business_id, delta, reason, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id`

	var txID uuid.UUID
	err := r.q.QueryRow(ctx, insertTx,
		uuid.New(), businessID, amount, reason.String(), reference,
	).Scan(&txID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append ledger entry", err, pgErrKind(err))
	}

	return txID, nil
}

func pgErrKind(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}
