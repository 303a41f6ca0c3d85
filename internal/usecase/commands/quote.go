package commands

import (
	"context"

	"leadgate/internal/domain/lead"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=quote.go -destination=../../../tests/mock/commands/quote_mock.go -package=commandsmock

// LocationMatcher finds the businesses eligible for a freshly submitted
// quote. Matching internals (geocoding, radius search) live behind this port.
type LocationMatcher interface {
	FindCandidateBusinesses(ctx context.Context, zipcode lead.Zipcode, category string) ([]uuid.UUID, error)
}

// QuoteSubmission is the validated consumer request that becomes a lead.
type QuoteSubmission struct {
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
}

type SubmitQuoteResult struct {
	LeadID     uuid.UUID
	Candidates int
}

type QuoteCommands interface {
	// SubmitQuote creates the lead and one un-revealed assignment per
	// candidate business, all in one transaction.
	SubmitQuote(ctx context.Context, submission QuoteSubmission) (*SubmitQuoteResult, error)
}

type quoteUseCaseImpl struct {
	uow     shared.UnitOfWork
	matcher LocationMatcher
}

func NewQuoteCommands(uow shared.UnitOfWork, matcher LocationMatcher) QuoteCommands {
	return &quoteUseCaseImpl{
		uow:     uow,
		matcher: matcher,
	}
}

func (u *quoteUseCaseImpl) SubmitQuote(ctx context.Context, submission QuoteSubmission) (*SubmitQuoteResult, error) {
	newLead, zipcode, err := buildLead(submission)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	candidates, err := u.matcher.FindCandidateBusinesses(ctx, zipcode, newLead.Detail().Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(candidates) == 0 {
		return nil, errs.ErrNoCandidates
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Leads().Create(ctx, newLead, candidates); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SubmitQuoteResult{
		LeadID:     newLead.ID(),
		Candidates: len(candidates),
	}, nil
}

func buildLead(s QuoteSubmission) (*lead.Lead, lead.Zipcode, error) {
	email, err := lead.NewEmail(s.ConsumerEmail)
	if err != nil {
		return nil, lead.Zipcode{}, err
	}
	phone, err := lead.NewPhone(s.ConsumerPhone)
	if err != nil {
		return nil, lead.Zipcode{}, err
	}
	contact, err := lead.NewContact(s.ConsumerName, email, phone)
	if err != nil {
		return nil, lead.Zipcode{}, err
	}
	zipcode, err := lead.NewZipcode(s.Zipcode)
	if err != nil {
		return nil, lead.Zipcode{}, err
	}
	note, err := lead.NewNote(s.Note)
	if err != nil {
		return nil, lead.Zipcode{}, err
	}

	detail := lead.ServiceDetail{
		Category:    s.Category,
		Description: s.Description,
		Timeline:    s.Timeline,
		BudgetCents: s.BudgetCents,
		Zipcode:     zipcode,
		City:        s.City,
		State:       s.State,
		Address:     s.Address,
	}

	newLead, err := lead.NewLead(contact, detail, note)
	if err != nil {
		return nil, lead.Zipcode{}, err
	}
	return newLead, zipcode, nil
}
