package queries

import (
	"context"
	"time"

	"leadgate/internal/infra"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/pkg/masking"

	"github.com/google/uuid"
)

//go:generate mockgen -source=lead.go -destination=../../../tests/mock/queries/lead_mock.go -package=queriesmock

// StatusFilter narrows lead lists by lifecycle state.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = "active"
	FilterArchived StatusFilter = "archived"
)

// LeadView is the read model returned to a business. Contact fields are
// masked unless the business has revealed the lead.
type LeadView struct {
	ID            uuid.UUID  `json:"id"`
	ConsumerName  string     `json:"consumer_name"`
	ConsumerEmail string     `json:"consumer_email"`
	ConsumerPhone string     `json:"consumer_phone"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	Timeline      string     `json:"timeline,omitempty"`
	BudgetCents   int64      `json:"budget_cents"`
	Zipcode       string     `json:"zipcode"`
	City          string     `json:"city,omitempty"`
	State         string     `json:"state,omitempty"`
	Address       string     `json:"address,omitempty"`
	Note          string     `json:"note,omitempty"`
	Status        string     `json:"status"`
	Revealed      bool       `json:"revealed"`
	RevealedAt    *time.Time `json:"revealed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// LeadBusinessRow is the raw joined row of a lead and its assignment for one
// business. Contact fields are unmasked here; masking happens in this layer.
type LeadBusinessRow struct {
	ID            uuid.UUID
	ConsumerName  string
	ConsumerEmail string
	ConsumerPhone string
	Category      string
	Description   string
	Timeline      string
	BudgetCents   int64
	Zipcode       string
	City          string
	State         string
	Address       string
	Note          string
	Status        string
	Revealed      bool
	RevealedAt    *time.Time
	CreatedAt     time.Time
}

type LeadReadStore interface {
	FindForBusiness(ctx context.Context, leadID, businessID uuid.UUID) (*LeadBusinessRow, error)
	ListForBusiness(ctx context.Context, businessID uuid.UUID, filter StatusFilter) ([]*LeadBusinessRow, error)
}

type LeadQueries interface {
	// GetForBusiness returns the lead view for the calling business, masked
	// unless revealed.
	GetForBusiness(ctx context.Context, leadID, businessID uuid.UUID) (*LeadView, error)
	ListForBusiness(ctx context.Context, businessID uuid.UUID, filter StatusFilter) ([]*LeadView, error)
}

type leadQueriesImpl struct {
	store LeadReadStore
}

func NewLeadQueries(store LeadReadStore) LeadQueries {
	return &leadQueriesImpl{store: store}
}

func (q *leadQueriesImpl) GetForBusiness(ctx context.Context, leadID, businessID uuid.UUID) (*LeadView, error) {
	row, err := q.store.FindForBusiness(ctx, leadID, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotAssigned)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rowToView(row), nil
}

func (q *leadQueriesImpl) ListForBusiness(ctx context.Context, businessID uuid.UUID, filter StatusFilter) ([]*LeadView, error) {
	rows, err := q.store.ListForBusiness(ctx, businessID, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*LeadView, len(rows))
	for i, row := range rows {
		views[i] = rowToView(row)
	}
	return views, nil
}

func rowToView(row *LeadBusinessRow) *LeadView {
	view := &LeadView{
		ID:            row.ID,
		ConsumerName:  row.ConsumerName,
		ConsumerEmail: row.ConsumerEmail,
		ConsumerPhone: row.ConsumerPhone,
		Category:      row.Category,
		Description:   row.Description,
		Timeline:      row.Timeline,
		BudgetCents:   row.BudgetCents,
		Zipcode:       row.Zipcode,
		City:          row.City,
		State:         row.State,
		Address:       row.Address,
		Note:          row.Note,
		Status:        row.Status,
		Revealed:      row.Revealed,
		RevealedAt:    row.RevealedAt,
		CreatedAt:     row.CreatedAt,
	}

	if !row.Revealed {
		view.ConsumerName = masking.Name(row.ConsumerName)
		view.ConsumerEmail = masking.Email(row.ConsumerEmail)
		view.ConsumerPhone = masking.Phone(row.ConsumerPhone)
		// Street address is a contact path too; zip/city/state stay visible.
		view.Address = ""
	}

	return view
}
