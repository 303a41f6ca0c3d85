package shared

import (
	"context"
	"time"

	"leadgate/internal/domain/credit"
	"leadgate/internal/domain/lead"
	"leadgate/internal/infra/db"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, q db.Querier) error) error
}

type Tx interface {
	Leads() LeadRepository
	Assignments() AssignmentRepository
	Ledger() LedgerRepository
	DB() db.Querier
}

// Minimal snapshot of a lead for command-side checks
type LeadSnapshot struct {
	ID     uuid.UUID
	Status lead.Status
}

type LeadRepository interface {
	// Create persists the lead and one assignment row per candidate business.
	Create(ctx context.Context, l *lead.Lead, businessIDs []uuid.UUID) error
	FindByID(ctx context.Context, leadID uuid.UUID) (*LeadSnapshot, error)
	SetStatus(ctx context.Context, leadID uuid.UUID, status lead.Status) error
}

type AssignmentRepository interface {
	// Find rehydrates the assignment aggregate for (lead, business).
	Find(ctx context.Context, leadID, businessID uuid.UUID) (*lead.Assignment, error)
	// MarkRevealed flips the flag once. Returns false without error when the
	// assignment was already revealed (idempotent no-op).
	MarkRevealed(ctx context.Context, leadID, businessID uuid.UUID, at time.Time) (bool, error)
}

type LedgerRepository interface {
	// TryDebit atomically checks and decrements the balance, appending a
	// lead_reveal transaction. Serialized per business by a row lock on the
	// balance row. Idempotent on (businessID, reference): an existing reveal
	// transaction is returned without charging again.
	TryDebit(ctx context.Context, businessID uuid.UUID, amount int64, reference uuid.UUID) (uuid.UUID, error)
	Grant(ctx context.Context, businessID uuid.UUID, amount int64, reason credit.Reason, reference *uuid.UUID) (uuid.UUID, error)
}
