//go:build unit

package commands_test

import (
	"context"
	"testing"

	"leadgate/internal/domain/lead"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/commands"
	"leadgate/internal/usecase/shared"
	"leadgate/tests/common/builder"
	commandsmock "leadgate/tests/mock/commands"
	sharedmock "leadgate/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUoW     *sharedmock.MockUnitOfWork
	mockTx      *sharedmock.MockTx
	mockLeads   *sharedmock.MockLeadRepository
	mockMatcher *commandsmock.MockLocationMatcher
	useCase     commands.QuoteCommands
}

func (s *QuoteTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.mockTx = sharedmock.NewMockTx(s.ctrl)
	s.mockLeads = sharedmock.NewMockLeadRepository(s.ctrl)
	s.mockMatcher = commandsmock.NewMockLocationMatcher(s.ctrl)
	s.useCase = commands.NewQuoteCommands(s.mockUoW, s.mockMatcher)

	s.mockTx.EXPECT().Leads().Return(s.mockLeads).AnyTimes()
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		},
	).AnyTimes()
}

func (s *QuoteTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestQuoteSuite(t *testing.T) {
	suite.Run(t, new(QuoteTestSuite))
}

func (s *QuoteTestSuite) TestSubmitQuoteAssignsCandidates() {
	submission := builder.NewLeadBuilder().BuildSubmission()
	candidates := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	s.mockMatcher.EXPECT().FindCandidateBusinesses(gomock.Any(), gomock.Any(), submission.Category).
		Return(candidates, nil)

	var createdLead *lead.Lead
	s.mockLeads.EXPECT().Create(gomock.Any(), gomock.Any(), candidates).
		DoAndReturn(func(_ context.Context, l *lead.Lead, _ []uuid.UUID) error {
			createdLead = l
			return nil
		})

	result, err := s.useCase.SubmitQuote(context.Background(), submission)

	s.Require().NoError(err)
	s.Require().NotNil(createdLead)
	s.Equal(createdLead.ID(), result.LeadID)
	s.Equal(len(candidates), result.Candidates)
	s.Equal(lead.StatusNew, createdLead.Status())
	s.Equal(submission.ConsumerName, createdLead.Contact().Name())
}

func (s *QuoteTestSuite) TestSubmitQuoteWithNoCandidates() {
	submission := builder.NewLeadBuilder().BuildSubmission()

	s.mockMatcher.EXPECT().FindCandidateBusinesses(gomock.Any(), gomock.Any(), submission.Category).
		Return(nil, nil)

	result, err := s.useCase.SubmitQuote(context.Background(), submission)

	s.Nil(result)
	s.ErrorIs(err, errs.ErrNoCandidates)
}

func (s *QuoteTestSuite) TestSubmitQuoteValidatesBeforeMatching() {
	cases := []struct {
		name   string
		mutate func(*commands.QuoteSubmission)
	}{
		{"invalid email", func(q *commands.QuoteSubmission) { q.ConsumerEmail = "nope" }},
		{"invalid phone", func(q *commands.QuoteSubmission) { q.ConsumerPhone = "abc" }},
		{"empty name", func(q *commands.QuoteSubmission) { q.ConsumerName = "" }},
		{"empty category", func(q *commands.QuoteSubmission) { q.Category = "" }},
		{"bad zipcode", func(q *commands.QuoteSubmission) { q.Zipcode = "123" }},
		{"negative budget", func(q *commands.QuoteSubmission) { q.BudgetCents = -100 }},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			submission := builder.NewLeadBuilder().BuildSubmission()
			c.mutate(&submission)

			// The matcher must never be consulted for an invalid submission.
			result, err := s.useCase.SubmitQuote(context.Background(), submission)

			s.Nil(result)
			s.ErrorIs(err, errs.ErrDomainValidation)
		})
	}
}
