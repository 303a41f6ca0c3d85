package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "leadgate/internal/handler/dto/request"
	resdto "leadgate/internal/handler/dto/response"
	"leadgate/internal/handler/middleware"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/commands"
	"leadgate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	creditQueries  queries.CreditQueries
	creditCommands commands.CreditCommands
}

func NewCreditHandler(creditQueries queries.CreditQueries, creditCommands commands.CreditCommands) *CreditHandler {
	return &CreditHandler{
		creditQueries:  creditQueries,
		creditCommands: creditCommands,
	}
}

// @Summary Get credit balance
// @Description Get the calling business's current credit balance
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.BalanceView
// @Failure 401 {object} map[string]string
// @Router /credits/balance [get]
func (h *CreditHandler) GetBalance(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	balance, err := h.creditQueries.GetBalance(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, balance)
}

// @Summary List credit transactions
// @Description List the calling business's ledger entries, newest first
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries to return (default 50, cap 200)"
// @Success 200 {object} resdto.TransactionListResponse
// @Failure 401 {object} map[string]string
// @Router /credits/transactions [get]
func (h *CreditHandler) ListTransactions(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	views, err := h.creditQueries.ListTransactions(c.Request.Context(), businessID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionViews(views))
}

// @Summary Grant credits
// @Description Record a credit grant for a business (admin only)
// @Tags credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GrantCreditsRequest true "Grant request"
// @Success 201 {object} resdto.GrantCreditsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /credits/grants [post]
func (h *CreditHandler) GrantCredits(c *gin.Context) {
	var req reqdto.GrantCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reason, err := req.ToReason()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown transaction reason",
		})
		return
	}

	result, err := h.creditCommands.GrantCredits(c.Request.Context(), req.BusinessID, req.Amount, reason, req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Grant amount must be positive",
			})
		case errors.Is(err, errs.ErrInvalidReason):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown transaction reason",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGrantCreditsResult(result))
}
