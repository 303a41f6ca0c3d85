package api

import (
	"errors"
	"net/http"

	reqdto "leadgate/internal/handler/dto/request"
	resdto "leadgate/internal/handler/dto/response"
	"leadgate/internal/handler/middleware"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/commands"
	"leadgate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeadHandler struct {
	leadQueries       queries.LeadQueries
	revealCommands    commands.RevealCommands
	lifecycleCommands commands.LifecycleCommands
}

func NewLeadHandler(
	leadQueries queries.LeadQueries,
	revealCommands commands.RevealCommands,
	lifecycleCommands commands.LifecycleCommands,
) *LeadHandler {
	return &LeadHandler{
		leadQueries:       leadQueries,
		revealCommands:    revealCommands,
		lifecycleCommands: lifecycleCommands,
	}
}

// @Summary List assigned leads
// @Description List leads assigned to the calling business, masked unless revealed
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter: all, active, archived, or an exact status"
// @Success 200 {object} resdto.LeadListResponse
// @Failure 401 {object} map[string]string
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	filter := queries.StatusFilter(c.DefaultQuery("status", string(queries.FilterActive)))

	views, err := h.leadQueries.ListForBusiness(c.Request.Context(), businessID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLeadViews(views))
}

// @Summary Get lead
// @Description Get one assigned lead, masked unless revealed
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} queries.LeadView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	leadID, err := h.parseLeadID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lead ID format",
		})
		return
	}

	view, err := h.leadQueries.GetForBusiness(c.Request.Context(), leadID, businessID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotAssigned):
			// Not distinguishable from a nonexistent lead on purpose.
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lead not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Reveal lead contact
// @Description Spend one credit to unmask the lead's contact details
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} resdto.RevealResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id}/reveal [post]
func (h *LeadHandler) RevealLead(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	leadID, err := h.parseLeadID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lead ID format",
		})
		return
	}

	result, err := h.revealCommands.Reveal(c.Request.Context(), leadID, businessID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotAssigned):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lead not found",
			})
		case errors.Is(err, errs.ErrInsufficientCredits):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient credits",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevealResult(result))
}

// @Summary Update lead status
// @Description Move an assigned lead through its lifecycle
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param request body reqdto.SetStatusRequest true "Status update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /leads/{id}/status [patch]
func (h *LeadHandler) SetStatus(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	leadID, err := h.parseLeadID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lead ID format",
		})
		return
	}

	var req reqdto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	status, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Unknown lead status",
		})
		return
	}

	if err := h.lifecycleCommands.SetStatus(c.Request.Context(), leadID, businessID, status); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotAssigned), errors.Is(err, errs.ErrLeadNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lead not found",
			})
		case errors.Is(err, errs.ErrNotRevealed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Lead contact must be revealed first",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LeadHandler) parseLeadID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
