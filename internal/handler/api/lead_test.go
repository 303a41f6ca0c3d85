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
	"leadgate/internal/usecase/queries"
	"leadgate/tests/common/builder"
	"leadgate/tests/common/httptest"
	commandsmock "leadgate/tests/mock/commands"
	queriesmock "leadgate/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeadHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockQueries   *queriesmock.MockLeadQueries
	mockReveal    *commandsmock.MockRevealCommands
	mockLifecycle *commandsmock.MockLifecycleCommands
	handler       *api.LeadHandler

	businessID uuid.UUID
}

func (s *LeadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockLeadQueries(s.mockCtrl)
	s.mockReveal = commandsmock.NewMockRevealCommands(s.mockCtrl)
	s.mockLifecycle = commandsmock.NewMockLifecycleCommands(s.mockCtrl)
	s.handler = api.NewLeadHandler(s.mockQueries, s.mockReveal, s.mockLifecycle)

	s.businessID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("business_id", s.businessID)
		c.Next()
	}

	leads := s.router.Group("/leads", authMiddleware)
	leads.GET("", s.handler.ListLeads)
	leads.GET("/:id", s.handler.GetLead)
	leads.POST("/:id/reveal", s.handler.RevealLead)
	leads.PATCH("/:id/status", s.handler.SetStatus)
}

func (s *LeadHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeadHandlerSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}

// ================================================================================
// TestListLeads
// ================================================================================

func (s *LeadHandlerTestSuite) TestListLeads() {
	views := []*queries.LeadView{
		builder.NewLeadBuilder().BuildView(),
		builder.NewLeadBuilder().AsRevealed().BuildView(),
	}

	s.Run("success: defaults to the active filter", func() {
		s.mockQueries.EXPECT().ListForBusiness(gomock.Any(), s.businessID, queries.FilterActive).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads", nil, "bearer-token")

		var response resdto.LeadListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Total)
		s.Len(response.Leads, 2)
	})

	s.Run("success: passes the status filter through", func() {
		s.mockQueries.EXPECT().ListForBusiness(gomock.Any(), s.businessID, queries.FilterArchived).
			Return([]*queries.LeadView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads?status=archived", nil, "bearer-token")

		var response resdto.LeadListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.Total)
		s.NotNil(response.Leads)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListForBusiness(gomock.Any(), s.businessID, queries.FilterActive).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetLead
// ================================================================================

func (s *LeadHandlerTestSuite) TestGetLead() {
	leadID := uuid.New()
	url := "/leads/" + leadID.String()

	returnView := builder.NewLeadBuilder().WithID(leadID).BuildView()

	s.Run("success: returns 200 OK with the lead view", func() {
		s.mockQueries.EXPECT().GetForBusiness(gomock.Any(), leadID, s.businessID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.LeadView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(leadID, response.ID)
		s.Equal(returnView.ConsumerName, response.ConsumerName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leads/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lead ID")
	})

	s.Run("error: 404 Not Found for an unassigned lead", func() {
		s.mockQueries.EXPECT().GetForBusiness(gomock.Any(), leadID, s.businessID).
			Return(nil, errs.ErrNotAssigned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lead not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetForBusiness(gomock.Any(), leadID, s.businessID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestRevealLead
// ================================================================================

func (s *LeadHandlerTestSuite) TestRevealLead() {
	leadID := uuid.New()
	url := "/leads/" + leadID.String() + "/reveal"

	revealedView := builder.NewLeadBuilder().WithID(leadID).AsRevealed().BuildView()

	s.Run("success: returns 200 OK with unmasked lead and remaining credits", func() {
		s.mockReveal.EXPECT().Reveal(gomock.Any(), leadID, s.businessID).
			Return(&commands.RevealResult{Lead: revealedView, CreditsRemaining: 4}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.RevealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Lead.Revealed)
		s.Equal(int64(4), response.CreditsRemaining)
		s.False(response.AlreadyRevealed)
	})

	s.Run("success: repeat reveal reports already_revealed", func() {
		s.mockReveal.EXPECT().Reveal(gomock.Any(), leadID, s.businessID).
			Return(&commands.RevealResult{Lead: revealedView, CreditsRemaining: 4, AlreadyRevealed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.RevealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.AlreadyRevealed)
		s.Equal(int64(4), response.CreditsRemaining)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/leads/invalid-uuid/reveal", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lead ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not assigned",
				commandsError:  errs.ErrNotAssigned,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Lead not found",
			},
			{
				name:           "insufficient credits",
				commandsError:  errs.ErrInsufficientCredits,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Insufficient credits",
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
				s.mockReveal.EXPECT().Reveal(gomock.Any(), leadID, s.businessID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestSetStatus
// ================================================================================

func (s *LeadHandlerTestSuite) TestSetStatus() {
	leadID := uuid.New()
	url := "/leads/" + leadID.String() + "/status"

	reqBody := map[string]any{"status": "contacted"}

	s.Run("success: returns 204 No Content", func() {
		s.mockLifecycle.EXPECT().SetStatus(gomock.Any(), leadID, s.businessID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/leads/invalid-uuid/status", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lead ID")
	})

	s.Run("error: 400 Bad Request for missing status field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 Unprocessable Entity for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Unknown lead status")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not assigned",
				commandsError:  errs.ErrNotAssigned,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Lead not found",
			},
			{
				name:           "lead row missing",
				commandsError:  errs.ErrLeadNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Lead not found",
			},
			{
				name:           "not revealed yet",
				commandsError:  errs.ErrNotRevealed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "revealed first",
			},
			{
				name:           "illegal transition",
				commandsError:  errs.ErrInvalidTransition,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid status transition",
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
				s.mockLifecycle.EXPECT().SetStatus(gomock.Any(), leadID, s.businessID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
