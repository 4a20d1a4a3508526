package handlers

import (
	"net/http"

	"storably/services/notification"
	"storably/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler registers device tokens for push delivery.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// RegisterDeviceToken handles POST /api/notifications/token.
func (h *NotificationHandler) RegisterDeviceToken(c *gin.Context) {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Token == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "token is required")
		return
	}

	tenantID := c.GetString("accountID")
	if err := h.Service.RegisterDeviceToken(c.Request.Context(), tenantID, input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to register token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "registered"})
}
