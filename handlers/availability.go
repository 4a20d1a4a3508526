package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"storably/models"
	"storably/services/booking"
	"storably/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves read-only availability checks. Responses
// are cached briefly; a cached answer can be stale by at most the TTL,
// which the booking write path re-validates anyway.
type AvailabilityHandler struct {
	Service booking.BookingService
	Cache   utils.Cache
}

func NewAvailabilityHandler(svc booking.BookingService, cache utils.Cache) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Cache: cache}
}

// CheckAvailability handles GET /api/warehouses/:id/availability.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	warehouseID := c.Param("id")
	bookingType := models.BookingType(c.DefaultQuery("type", string(models.BookingTypePallet)))
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil {
		respondError(c, booking.NewValidationError("quantity", "must be an integer"))
		return
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("%s%s:%s:%d:%s:%s",
		utils.AvailabilityCachePrefix, warehouseID, bookingType, quantity, startDate, endDate)
	if cached, err := h.Cache.Get(ctx, cacheKey); err == nil {
		var result models.AvailabilityResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			c.JSON(http.StatusOK, result)
			return
		}
	}

	result, err := h.Service.CheckAvailability(ctx, warehouseID, bookingType, quantity, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	if data, err := json.Marshal(result); err == nil {
		if err := h.Cache.Set(ctx, cacheKey, string(data), utils.AvailabilityCacheTTL); err != nil {
			utils.GetLogger().Warn("failed to cache availability result", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, result)
}
