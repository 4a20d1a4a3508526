package handlers

import (
	"net/http"

	"storably/models"
	"storably/services/booking"
	"storably/services/crm"
	"storably/utils"

	"github.com/gin-gonic/gin"
)

// LeadHandler serves the CRM lead pipeline endpoints.
type LeadHandler struct {
	Service crm.LeadService
}

func NewLeadHandler(svc crm.LeadService) *LeadHandler {
	return &LeadHandler{Service: svc}
}

// CaptureLead handles POST /api/leads. Lead capture is public: it backs
// the marketing site's contact form.
func (h *LeadHandler) CaptureLead(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	captured, err := h.Service.Capture(c.Request.Context(), &lead)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to capture lead", err.Error())
		return
	}
	c.JSON(http.StatusCreated, captured)
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.Service.List(c.Request.Context(), c.Query("stage"))
	if err != nil {
		respondError(c, booking.NewUpstreamError("list leads", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	id := c.Param("id")
	lead, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, booking.NewUpstreamError("fetch lead", err))
		return
	}
	if lead == nil {
		respondError(c, booking.NewNotFoundError("lead", id))
		return
	}
	c.JSON(http.StatusOK, lead)
}

// AdvanceLead handles PUT /api/leads/:id/stage.
func (h *LeadHandler) AdvanceLead(c *gin.Context) {
	var input struct {
		Stage string `json:"stage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	lead, err := h.Service.AdvanceStage(c.Request.Context(), c.Param("id"), input.Stage)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to advance lead", err.Error())
		return
	}
	c.JSON(http.StatusOK, lead)
}
