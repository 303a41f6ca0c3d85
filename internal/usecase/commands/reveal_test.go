//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"leadgate/internal/domain/lead"
	"leadgate/internal/infra"
	"leadgate/internal/pkg/clock"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/commands"
	"leadgate/internal/usecase/queries"
	"leadgate/internal/usecase/shared"
	"leadgate/tests/common/builder"
	queriesmock "leadgate/tests/mock/queries"
	sharedmock "leadgate/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RevealTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUoW         *sharedmock.MockUnitOfWork
	mockTx          *sharedmock.MockTx
	mockAssignments *sharedmock.MockAssignmentRepository
	mockLedger      *sharedmock.MockLedgerRepository
	mockLeadQueries *queriesmock.MockLeadQueries
	mockCredits     *queriesmock.MockCreditQueries
	clock           *clock.MockClock
	useCase         commands.RevealCommands

	leadID     uuid.UUID
	businessID uuid.UUID
}

func (s *RevealTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.mockTx = sharedmock.NewMockTx(s.ctrl)
	s.mockAssignments = sharedmock.NewMockAssignmentRepository(s.ctrl)
	s.mockLedger = sharedmock.NewMockLedgerRepository(s.ctrl)
	s.mockLeadQueries = queriesmock.NewMockLeadQueries(s.ctrl)
	s.mockCredits = queriesmock.NewMockCreditQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.useCase = commands.NewRevealCommands(s.mockUoW, s.mockLeadQueries, s.mockCredits, s.clock)

	s.leadID = uuid.New()
	s.businessID = uuid.New()

	s.mockTx.EXPECT().Assignments().Return(s.mockAssignments).AnyTimes()
	s.mockTx.EXPECT().Ledger().Return(s.mockLedger).AnyTimes()
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		},
	).AnyTimes()
}

func (s *RevealTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRevealSuite(t *testing.T) {
	suite.Run(t, new(RevealTestSuite))
}

func (s *RevealTestSuite) TestFirstRevealChargesOneCredit() {
	lb := builder.NewLeadBuilder().WithID(s.leadID)
	revealedView := lb.AsRevealed().BuildView()

	s.mockAssignments.EXPECT().Find(gomock.Any(), s.leadID, s.businessID).
		Return(lead.NewAssignment(s.leadID, s.businessID), nil)
	s.mockLedger.EXPECT().TryDebit(gomock.Any(), s.businessID, int64(commands.RevealCostCredits), s.leadID).
		Return(uuid.New(), nil)
	s.mockAssignments.EXPECT().MarkRevealed(gomock.Any(), s.leadID, s.businessID, s.clock.Now()).
		Return(true, nil)
	s.mockLeadQueries.EXPECT().GetForBusiness(gomock.Any(), s.leadID, s.businessID).
		Return(revealedView, nil)
	s.mockCredits.EXPECT().GetBalance(gomock.Any(), s.businessID).
		Return(&queries.BalanceView{BusinessID: s.businessID, Balance: 4}, nil)

	result, err := s.useCase.Reveal(context.Background(), s.leadID, s.businessID)

	s.Require().NoError(err)
	s.False(result.AlreadyRevealed)
	s.Equal(int64(4), result.CreditsRemaining)
	s.True(result.Lead.Revealed)
}

func (s *RevealTestSuite) TestSecondRevealIsFreeNoOp() {
	lb := builder.NewLeadBuilder().WithID(s.leadID).AsRevealed()

	s.mockAssignments.EXPECT().Find(gomock.Any(), s.leadID, s.businessID).
		Return(lb.BuildAssignment(s.businessID), nil)
	// No TryDebit, no MarkRevealed: the short-circuit never touches the ledger.
	s.mockLeadQueries.EXPECT().GetForBusiness(gomock.Any(), s.leadID, s.businessID).
		Return(lb.BuildView(), nil)
	s.mockCredits.EXPECT().GetBalance(gomock.Any(), s.businessID).
		Return(&queries.BalanceView{BusinessID: s.businessID, Balance: 4}, nil)

	result, err := s.useCase.Reveal(context.Background(), s.leadID, s.businessID)

	s.Require().NoError(err)
	s.True(result.AlreadyRevealed)
	s.Equal(int64(4), result.CreditsRemaining)
}

func (s *RevealTestSuite) TestRevealUnassignedLead() {
	s.mockAssignments.EXPECT().Find(gomock.Any(), s.leadID, s.businessID).
		Return(nil, infra.NewRepoErr("assignment not found", infra.KindNotFound))

	result, err := s.useCase.Reveal(context.Background(), s.leadID, s.businessID)

	s.Nil(result)
	s.ErrorIs(err, errs.ErrNotAssigned)
}

func (s *RevealTestSuite) TestRevealWithInsufficientCredits() {
	s.mockAssignments.EXPECT().Find(gomock.Any(), s.leadID, s.businessID).
		Return(lead.NewAssignment(s.leadID, s.businessID), nil)
	s.mockLedger.EXPECT().TryDebit(gomock.Any(), s.businessID, int64(commands.RevealCostCredits), s.leadID).
		Return(uuid.Nil, infra.NewRepoErr("insufficient credits", infra.KindConditionNotMet))
	// MarkRevealed must not run when the debit is refused.

	result, err := s.useCase.Reveal(context.Background(), s.leadID, s.businessID)

	s.Nil(result)
	s.ErrorIs(err, errs.ErrInsufficientCredits)
}

func (s *RevealTestSuite) TestRevealPropagatesDebitFailure() {
	s.mockAssignments.EXPECT().Find(gomock.Any(), s.leadID, s.businessID).
		Return(lead.NewAssignment(s.leadID, s.businessID), nil)
	s.mockLedger.EXPECT().TryDebit(gomock.Any(), s.businessID, int64(commands.RevealCostCredits), s.leadID).
		Return(uuid.Nil, infra.NewRepoErr("connection reset", infra.KindDBFailure))

	result, err := s.useCase.Reveal(context.Background(), s.leadID, s.businessID)

	s.Nil(result)
	s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
}
