//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"leadgate/internal/handler/api"
	resdto "leadgate/internal/handler/dto/response"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/commands"
	"leadgate/tests/common/builder"
	"leadgate/tests/common/httptest"
	"leadgate/tests/common/testutil"
	commandsmock "leadgate/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuoteCommands
	handler      *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockCommands)

	// Quote intake is consumer-facing and unauthenticated.
	s.router.POST("/quotes", s.handler.SubmitQuote)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

// ================================================================================
// TestSubmitQuote
// ================================================================================

func (s *QuoteHandlerTestSuite) TestSubmitQuote() {
	url := "/quotes"

	reqBody := builder.NewLeadBuilder().BuildQuoteRequestDTO()
	leadID := uuid.New()

	s.Run("success: returns 201 Created with lead id and candidate count", func() {
		s.mockCommands.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).
			Return(&commands.SubmitQuoteResult{LeadID: leadID, Candidates: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SubmitQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(leadID, response.LeadID)
		s.Equal(3, response.Candidates)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: consumer_name (required)", mutate: testutil.Field("consumer_name", nil)},
			{name: "missing field: consumer_email (required)", mutate: testutil.Field("consumer_email", nil)},
			{name: "malformed consumer_email", mutate: testutil.Field("consumer_email", "not-an-email")},
			{name: "missing field: consumer_phone (required)", mutate: testutil.Field("consumer_phone", nil)},
			{name: "missing field: category (required)", mutate: testutil.Field("category", nil)},
			{name: "missing field: description (required)", mutate: testutil.Field("description", nil)},
			{name: "missing field: zipcode (required)", mutate: testutil.Field("zipcode", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation rejected the submission",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "failed validation",
			},
			{
				name:           "no candidate businesses",
				commandsError:  errs.ErrNoCandidates,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No businesses serve this category",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
