package repository

import (
	"context"
	"errors"
	"time"

	"leadgate/internal/domain/lead"
	"leadgate/internal/infra"
	"leadgate/internal/infra/db"
	"leadgate/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LeadRepository struct {
	q db.Querier
}

func NewLeadRepository(q db.Querier) *LeadRepository {
	return &LeadRepository{q: q}
}

func (r *LeadRepository) Create(ctx context.Context, l *lead.Lead, businessIDs []uuid.UUID) error {
	const insertLead = `
		INSERT INTO leads (
			id, consumer_name, consumer_email, consumer_phone,
			category, description, timeline, budget_cents,
			zipcode, city, state, address, note, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())`

	detail := l.Detail()
	contact := l.Contact()

	_, err := r.q.Exec(ctx, insertLead,
		l.ID(),
		contact.Name(),
		contact.Email().Value(),
		contact.Phone().Value(),
		detail.Category,
		detail.Description,
		detail.Timeline,
		detail.BudgetCents,
		detail.Zipcode.Value(),
		detail.City,
		detail.State,
		detail.Address,
		l.Note().String(),
		l.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create lead", err, pgErrKind(err))
	}

	const insertAssignment = `
		INSERT INTO lead_assignments (lead_id, business_id, revealed)
		VALUES ($1, $2, false)`

	for _, businessID := range businessIDs {
		if _, err := r.q.Exec(ctx, insertAssignment, l.ID(), businessID); err != nil {
			return infra.WrapRepoErr("failed to create lead assignment", err, pgErrKind(err))
		}
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, leadID uuid.UUID) (*shared.LeadSnapshot, error) {
	const query = `SELECT id, status FROM leads WHERE id = $1`

	var (
		id     uuid.UUID
		status string
	)
	err := r.q.QueryRow(ctx, query, leadID).Scan(&id, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lead not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead by ID", err)
	}

	return &shared.LeadSnapshot{ID: id, Status: lead.Status(status)}, nil
}

func (r *LeadRepository) SetStatus(ctx context.Context, leadID uuid.UUID, status lead.Status) error {
	const query = `UPDATE leads SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.q.Exec(ctx, query, leadID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to set lead status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("lead not found", infra.KindNotFound)
	}
	return nil
}

type AssignmentRepository struct {
	q db.Querier
}

func NewAssignmentRepository(q db.Querier) *AssignmentRepository {
	return &AssignmentRepository{q: q}
}

func (r *AssignmentRepository) Find(ctx context.Context, leadID, businessID uuid.UUID) (*lead.Assignment, error) {
	const query = `
		SELECT lead_id, business_id, revealed, revealed_at
		FROM lead_assignments
		WHERE lead_id = $1 AND business_id = $2`

	var (
		gotLeadID     uuid.UUID
		gotBusinessID uuid.UUID
		revealed      bool
		revealedAt    *time.Time
	)
	err := r.q.QueryRow(ctx, query, leadID, businessID).Scan(
		&gotLeadID,
		&gotBusinessID,
		&revealed,
		&revealedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("assignment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find assignment", err)
	}

	return lead.ReconstructAssignment(gotLeadID, gotBusinessID, revealed, revealedAt), nil
}

// MarkRevealed flips the revealed flag once. The conditional UPDATE makes the
// flip monotonic; a second call matches zero rows and is reported as a no-op
// (false, nil) so retried reveal flows converge instead of failing.
func (r *AssignmentRepository) MarkRevealed(ctx context.Context, leadID, businessID uuid.UUID, at time.Time) (bool, error) {
	const query = `
		UPDATE lead_assignments
		SET revealed = true, revealed_at = $3
		WHERE lead_id = $1 AND business_id = $2 AND revealed = false`

	tag, err := r.q.Exec(ctx, query, leadID, businessID, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark assignment revealed", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// Zero rows: distinguish already-revealed from not-assigned.
	const exists = `SELECT 1 FROM lead_assignments WHERE lead_id = $1 AND business_id = $2`
	var one int
	if err := r.q.QueryRow(ctx, exists, leadID, businessID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, infra.NewRepoErr("assignment not found", infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to check assignment", err)
	}
	return false, nil
}
