package api

import (
	"errors"
	"net/http"

	reqdto "leadgate/internal/handler/dto/request"
	resdto "leadgate/internal/handler/dto/response"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteCommands commands.QuoteCommands
}

func NewQuoteHandler(quoteCommands commands.QuoteCommands) *QuoteHandler {
	return &QuoteHandler{
		quoteCommands: quoteCommands,
	}
}

// @Summary Submit quote request
// @Description Submit a consumer quote request; creates a lead and assigns matching businesses
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitQuoteRequest true "Quote request"
// @Success 201 {object} resdto.SubmitQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var req reqdto.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.quoteCommands.SubmitQuote(c.Request.Context(), req.ToSubmission())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Quote request failed validation",
			})
		case errors.Is(err, errs.ErrNoCandidates):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No businesses serve this category in the requested area",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitQuoteResult(result))
}
