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

const selectLeadColumns = `
	l.id, l.consumer_name, l.consumer_email, l.consumer_phone,
	l.category, l.description, l.timeline, l.budget_cents,
	l.zipcode, l.city, l.state, l.address, l.note, l.status,
	a.revealed, a.revealed_at, l.created_at
`

type LeadReadStore struct {
	q db.Querier
}

func NewLeadReadStore(q db.Querier) *LeadReadStore {
	return &LeadReadStore{q: q}
}

func (r *LeadReadStore) FindForBusiness(ctx context.Context, leadID, businessID uuid.UUID) (*queries.LeadBusinessRow, error) {
	query := `SELECT ` + selectLeadColumns + `
		FROM leads l
		JOIN lead_assignments a ON a.lead_id = l.id
		WHERE l.id = $1 AND a.business_id = $2`

	row, err := scanLeadRow(r.q.QueryRow(ctx, query, leadID, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lead not assigned to business", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead for business", err)
	}
	return row, nil
}

func (r *LeadReadStore) ListForBusiness(ctx context.Context, businessID uuid.UUID, filter queries.StatusFilter) ([]*queries.LeadBusinessRow, error) {
	query := `SELECT ` + selectLeadColumns + `
		FROM leads l
		JOIN lead_assignments a ON a.lead_id = l.id
		WHERE a.business_id = $1`

	args := []any{businessID}

	switch filter {
	case queries.FilterActive, "":
		query += ` AND l.status IN ('new', 'contacted')`
	case queries.FilterArchived:
		query += ` AND l.status IN ('viewed', 'won', 'lost')`
	case queries.FilterAll:
		// no status predicate
	default:
		// Exact status filter
		query += ` AND l.status = $2`
		args = append(args, string(filter))
	}

	query += ` ORDER BY l.created_at DESC, l.id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leads for business", err)
	}
	defer rows.Close()

	var result []*queries.LeadBusinessRow
	for rows.Next() {
		row, err := scanLeadRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lead row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lead rows", err)
	}

	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLeadRow(s scanner) (*queries.LeadBusinessRow, error) {
	var row queries.LeadBusinessRow
	if err := s.Scan(
		&row.ID, &row.ConsumerName, &row.ConsumerEmail, &row.ConsumerPhone,
		&row.Category, &row.Description, &row.Timeline, &row.BudgetCents,
		&row.Zipcode, &row.City, &row.State, &row.Address, &row.Note, &row.Status,
		&row.Revealed, &row.RevealedAt, &row.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &row, nil
}
