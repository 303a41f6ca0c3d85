package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ServiceDetail is the non-identifying metadata of a quote: what the consumer
// wants done, where, and on what budget.
type ServiceDetail struct {
	Category    string
	Description string
	Timeline    string
	BudgetCents int64
	Zipcode     Zipcode
	City        string
	State       string
	Address     string
}

// Lead is a consumer service request distributed to one or more businesses.
// Created at quote intake, never deleted, only archived through its status.
type Lead struct {
	id        uuid.UUID
	contact   Contact
	detail    ServiceDetail
	note      Note
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewLead(contact Contact, detail ServiceDetail, note Note) (*Lead, error) {
	if strings.TrimSpace(detail.Category) == "" {
		return nil, ErrEmptyCategory
	}
	if detail.BudgetCents < 0 {
		return nil, ErrNegativeBudget
	}

	return &Lead{
		id:      uuid.New(),
		contact: contact,
		detail:  detail,
		note:    note,
		status:  StatusNew,
	}, nil
}

func (l *Lead) ID() uuid.UUID         { return l.id }
func (l *Lead) Contact() Contact      { return l.contact }
func (l *Lead) Detail() ServiceDetail { return l.detail }
func (l *Lead) Note() Note            { return l.note }
func (l *Lead) Status() Status        { return l.status }
func (l *Lead) CreatedAt() time.Time  { return l.createdAt }
func (l *Lead) UpdatedAt() time.Time  { return l.updatedAt }

func (l *Lead) IsActive() bool {
	return !l.status.IsArchived()
}

// TransitionTo applies a lifecycle transition, enforcing the state machine.
func (l *Lead) TransitionTo(to Status) error {
	if err := ValidateTransition(l.status, to); err != nil {
		return err
	}
	l.status = to
	return nil
}

// Assignment relates a lead to a business eligible to reveal it. The revealed
// flag is monotonic: once true it never reverts.
type Assignment struct {
	leadID     uuid.UUID
	businessID uuid.UUID
	revealed   bool
	revealedAt *time.Time
}

func NewAssignment(leadID, businessID uuid.UUID) *Assignment {
	return &Assignment{
		leadID:     leadID,
		businessID: businessID,
	}
}

func ReconstructAssignment(leadID, businessID uuid.UUID, revealed bool, revealedAt *time.Time) *Assignment {
	return &Assignment{
		leadID:     leadID,
		businessID: businessID,
		revealed:   revealed,
		revealedAt: revealedAt,
	}
}

func (a *Assignment) LeadID() uuid.UUID      { return a.leadID }
func (a *Assignment) BusinessID() uuid.UUID  { return a.businessID }
func (a *Assignment) Revealed() bool         { return a.revealed }
func (a *Assignment) RevealedAt() *time.Time { return a.revealedAt }

// Reveal flips the flag exactly once. A second call is ErrAlreadyRevealed;
// callers that must be idempotent absorb that error as a no-op success.
func (a *Assignment) Reveal(at time.Time) error {
	if a.revealed {
		return ErrAlreadyRevealed
	}
	a.revealed = true
	a.revealedAt = &at
	return nil
}
