package handlers

import (
	"net/http"

	calendarRepo "storably/database/repository/calendar"
	"storably/models"
	"storably/services/booking"
	"storably/utils"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the availability-calendar admin endpoints.
type CalendarHandler struct {
	Repo calendarRepo.CalendarRepository
}

func NewCalendarHandler(repo calendarRepo.CalendarRepository) *CalendarHandler {
	return &CalendarHandler{Repo: repo}
}

// GetCalendar handles GET /api/warehouses/:id/calendar?startDate=&endDate=.
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		respondError(c, booking.NewValidationError("startDate", "startDate and endDate are required"))
		return
	}

	entries, err := h.Repo.GetRange(c.Request.Context(), c.Param("id"), startDate, endDate)
	if err != nil {
		respondError(c, booking.NewUpstreamError("fetch calendar", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// UpsertEntry handles PUT /api/warehouses/:id/calendar.
func (h *CalendarHandler) UpsertEntry(c *gin.Context) {
	var entry models.CalendarEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	entry.WarehouseID = c.Param("id")
	if entry.Date == "" {
		respondError(c, booking.NewValidationError("date", "is required"))
		return
	}

	if err := h.Repo.Upsert(c.Request.Context(), &entry); err != nil {
		respondError(c, booking.NewUpstreamError("upsert calendar entry", err))
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/warehouses/:id/calendar/:date.
func (h *CalendarHandler) DeleteEntry(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id"), c.Param("date")); err != nil {
		respondError(c, booking.NewUpstreamError("delete calendar entry", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
