//go:build unit || e2e

package builder

import (
	"time"

	domlead "leadgate/internal/domain/lead"
	reqdto "leadgate/internal/handler/dto/request"
	"leadgate/internal/usecase/commands"
	"leadgate/internal/usecase/queries"
	"leadgate/internal/usecase/shared"

	"github.com/google/uuid"
)

type LeadBuilder struct {
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
	Status        domlead.Status
	Revealed      bool
	RevealedAt    *time.Time
	CreatedAt     time.Time
}

func NewLeadBuilder() *LeadBuilder {
	return &LeadBuilder{
		ID:            uuid.New(),
		ConsumerName:  "Jane Smith",
		ConsumerEmail: "jane.smith@example.com",
		ConsumerPhone: "(555) 123-4567",
		Category:      "plumbing",
		Description:   "Leaky kitchen faucet needs repair",
		Timeline:      "this_week",
		BudgetCents:   25000,
		Zipcode:       "94107",
		City:          "San Francisco",
		State:         "CA",
		Address:       "123 Main St, Apt 4",
		Note:          "Call before visiting",
		Status:        domlead.StatusNew,
		Revealed:      false,
		CreatedAt:     time.Now(),
	}
}

// Build methods
func (b *LeadBuilder) BuildDomain() (*domlead.Lead, error) {
	email, err := domlead.NewEmail(b.ConsumerEmail)
	if err != nil {
		return nil, err
	}
	phone, err := domlead.NewPhone(b.ConsumerPhone)
	if err != nil {
		return nil, err
	}
	contact, err := domlead.NewContact(b.ConsumerName, email, phone)
	if err != nil {
		return nil, err
	}
	zipcode, err := domlead.NewZipcode(b.Zipcode)
	if err != nil {
		return nil, err
	}
	note, err := domlead.NewNote(b.Note)
	if err != nil {
		return nil, err
	}

	detail := domlead.ServiceDetail{
		Category:    b.Category,
		Description: b.Description,
		Timeline:    b.Timeline,
		BudgetCents: b.BudgetCents,
		Zipcode:     zipcode,
		City:        b.City,
		State:       b.State,
		Address:     b.Address,
	}
	return domlead.NewLead(contact, detail, note)
}

func (b *LeadBuilder) BuildSubmission() commands.QuoteSubmission {
	return commands.QuoteSubmission{
		ConsumerName:  b.ConsumerName,
		ConsumerEmail: b.ConsumerEmail,
		ConsumerPhone: b.ConsumerPhone,
		Category:      b.Category,
		Description:   b.Description,
		Timeline:      b.Timeline,
		BudgetCents:   b.BudgetCents,
		Zipcode:       b.Zipcode,
		City:          b.City,
		State:         b.State,
		Address:       b.Address,
		Note:          b.Note,
	}
}

func (b *LeadBuilder) BuildQuoteRequestDTO() reqdto.SubmitQuoteRequest {
	return reqdto.SubmitQuoteRequest{
		ConsumerName:  b.ConsumerName,
		ConsumerEmail: b.ConsumerEmail,
		ConsumerPhone: b.ConsumerPhone,
		Category:      b.Category,
		Description:   b.Description,
		Timeline:      b.Timeline,
		BudgetCents:   b.BudgetCents,
		Zipcode:       b.Zipcode,
		City:          b.City,
		State:         b.State,
		Address:       b.Address,
		Note:          b.Note,
	}
}

func (b *LeadBuilder) BuildBusinessRow() *queries.LeadBusinessRow {
	return &queries.LeadBusinessRow{
		ID:            b.ID,
		ConsumerName:  b.ConsumerName,
		ConsumerEmail: b.ConsumerEmail,
		ConsumerPhone: b.ConsumerPhone,
		Category:      b.Category,
		Description:   b.Description,
		Timeline:      b.Timeline,
		BudgetCents:   b.BudgetCents,
		Zipcode:       b.Zipcode,
		City:          b.City,
		State:         b.State,
		Address:       b.Address,
		Note:          b.Note,
		Status:        string(b.Status),
		Revealed:      b.Revealed,
		RevealedAt:    b.RevealedAt,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *LeadBuilder) BuildView() *queries.LeadView {
	return &queries.LeadView{
		ID:            b.ID,
		ConsumerName:  b.ConsumerName,
		ConsumerEmail: b.ConsumerEmail,
		ConsumerPhone: b.ConsumerPhone,
		Category:      b.Category,
		Description:   b.Description,
		Timeline:      b.Timeline,
		BudgetCents:   b.BudgetCents,
		Zipcode:       b.Zipcode,
		City:          b.City,
		State:         b.State,
		Address:       b.Address,
		Note:          b.Note,
		Status:        string(b.Status),
		Revealed:      b.Revealed,
		RevealedAt:    b.RevealedAt,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *LeadBuilder) BuildAssignment(businessID uuid.UUID) *domlead.Assignment {
	return domlead.ReconstructAssignment(b.ID, businessID, b.Revealed, b.RevealedAt)
}

func (b *LeadBuilder) BuildLeadSnapshot() *shared.LeadSnapshot {
	return &shared.LeadSnapshot{
		ID:     b.ID,
		Status: b.Status,
	}
}

// Fluent builder methods
func (b *LeadBuilder) WithID(id uuid.UUID) *LeadBuilder {
	b.ID = id
	return b
}

func (b *LeadBuilder) WithConsumerName(name string) *LeadBuilder {
	b.ConsumerName = name
	return b
}

func (b *LeadBuilder) WithConsumerEmail(email string) *LeadBuilder {
	b.ConsumerEmail = email
	return b
}

func (b *LeadBuilder) WithConsumerPhone(phone string) *LeadBuilder {
	b.ConsumerPhone = phone
	return b
}

func (b *LeadBuilder) WithCategory(category string) *LeadBuilder {
	b.Category = category
	return b
}

func (b *LeadBuilder) WithBudgetCents(cents int64) *LeadBuilder {
	b.BudgetCents = cents
	return b
}

func (b *LeadBuilder) WithZipcode(zipcode string) *LeadBuilder {
	b.Zipcode = zipcode
	return b
}

func (b *LeadBuilder) WithNote(note string) *LeadBuilder {
	b.Note = note
	return b
}

func (b *LeadBuilder) WithStatus(status domlead.Status) *LeadBuilder {
	b.Status = status
	return b
}

func (b *LeadBuilder) AsRevealed() *LeadBuilder {
	b.Revealed = true
	at := time.Now()
	b.RevealedAt = &at
	return b
}
