//go:build unit

package queries_test

import (
	"context"
	"testing"

	"leadgate/internal/infra"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/queries"
	queriesmock "leadgate/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CreditQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *queriesmock.MockCreditReadStore
	queries   queries.CreditQueries

	businessID uuid.UUID
}

func (s *CreditQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockCreditReadStore(s.ctrl)
	s.queries = queries.NewCreditQueries(s.mockStore)

	s.businessID = uuid.New()
}

func (s *CreditQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCreditQueriesSuite(t *testing.T) {
	suite.Run(t, new(CreditQueriesTestSuite))
}

func (s *CreditQueriesTestSuite) TestGetBalance() {
	s.mockStore.EXPECT().Balance(gomock.Any(), s.businessID).Return(int64(12), nil)

	view, err := s.queries.GetBalance(context.Background(), s.businessID)

	s.Require().NoError(err)
	s.Equal(s.businessID, view.BusinessID)
	s.Equal(int64(12), view.Balance)
}

func (s *CreditQueriesTestSuite) TestGetBalanceMissingRowIsZero() {
	s.mockStore.EXPECT().Balance(gomock.Any(), s.businessID).
		Return(int64(0), infra.NewRepoErr("credit balance not found", infra.KindNotFound))

	view, err := s.queries.GetBalance(context.Background(), s.businessID)

	s.Require().NoError(err)
	s.Equal(int64(0), view.Balance)
}

func (s *CreditQueriesTestSuite) TestGetBalancePropagatesFailure() {
	s.mockStore.EXPECT().Balance(gomock.Any(), s.businessID).
		Return(int64(0), infra.NewRepoErr("connection reset", infra.KindDBFailure))

	view, err := s.queries.GetBalance(context.Background(), s.businessID)

	s.Nil(view)
	s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
}

func (s *CreditQueriesTestSuite) TestListTransactionsClampsLimit() {
	cases := []struct {
		name      string
		requested int
		effective int32
	}{
		{"zero falls back to the default", 0, 50},
		{"negative falls back to the default", -3, 50},
		{"over the cap falls back to the default", 500, 50},
		{"in range passes through", 25, 25},
	}

	for _, tt := range cases {
		s.Run(tt.name, func() {
			s.mockStore.EXPECT().Transactions(gomock.Any(), s.businessID, tt.effective).
				Return([]*queries.TransactionView{}, nil)

			_, err := s.queries.ListTransactions(context.Background(), s.businessID, tt.requested)
			s.NoError(err)
		})
	}
}

func (s *CreditQueriesTestSuite) TestListTransactionsReturnsRows() {
	ref := uuid.New()
	rows := []*queries.TransactionView{
		{ID: uuid.New(), BusinessID: s.businessID, Delta: -1, Reason: "lead_reveal", Reference: &ref},
		{ID: uuid.New(), BusinessID: s.businessID, Delta: 10, Reason: "purchase"},
	}
	s.mockStore.EXPECT().Transactions(gomock.Any(), s.businessID, int32(50)).Return(rows, nil)

	got, err := s.queries.ListTransactions(context.Background(), s.businessID, 50)

	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(int64(-1), got[0].Delta)
	s.Equal(&ref, got[0].Reference)
}
