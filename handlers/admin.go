package handlers

import (
	"net/http"

	"storably/services/admin"
	"storably/services/booking"
	"storably/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin dashboard and health endpoints.
type AdminHandler struct {
	Dashboard admin.DashboardService
}

func NewAdminHandler(dashboard admin.DashboardService) *AdminHandler {
	return &AdminHandler{Dashboard: dashboard}
}

func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.Dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, booking.NewUpstreamError("compute dashboard", err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Health reports the latest backing-service snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
