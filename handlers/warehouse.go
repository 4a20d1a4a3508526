package handlers

import (
	"net/http"

	warehouseRepo "storably/database/repository/warehouse"
	"storably/models"
	"storably/services/booking"
	"storably/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WarehouseHandler serves the warehouse catalog endpoints.
type WarehouseHandler struct {
	Repo warehouseRepo.WarehouseRepository
}

func NewWarehouseHandler(repo warehouseRepo.WarehouseRepository) *WarehouseHandler {
	return &WarehouseHandler{Repo: repo}
}

func (h *WarehouseHandler) ListWarehouses(c *gin.Context) {
	filter := warehouseRepo.WarehouseFilter{
		City:       c.Query("city"),
		ActiveOnly: c.Query("includeInactive") != "true",
	}
	warehouses, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, booking.NewUpstreamError("list warehouses", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"warehouses": warehouses})
}

func (h *WarehouseHandler) GetWarehouse(c *gin.Context) {
	id := c.Param("id")
	warehouse, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, booking.NewUpstreamError("fetch warehouse", err))
		return
	}
	if warehouse == nil {
		respondError(c, booking.NewNotFoundError("warehouse", id))
		return
	}
	c.JSON(http.StatusOK, warehouse)
}

func (h *WarehouseHandler) CreateWarehouse(c *gin.Context) {
	var w models.Warehouse
	if err := c.ShouldBindJSON(&w); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if w.Name == "" {
		respondError(c, booking.NewValidationError("name", "is required"))
		return
	}
	if w.Capacity.AvailablePalletSlots > w.Capacity.TotalPalletSlots ||
		w.Capacity.AvailableAreaSqFt > w.Capacity.TotalAreaSqFt {
		respondError(c, booking.NewValidationError("capacity", "available must not exceed total"))
		return
	}

	w.ID = uuid.New().String()
	w.Active = true
	if err := h.Repo.Create(c.Request.Context(), &w); err != nil {
		respondError(c, booking.NewUpstreamError("create warehouse", err))
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *WarehouseHandler) UpdateWarehouse(c *gin.Context) {
	id := c.Param("id")
	existing, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, booking.NewUpstreamError("fetch warehouse", err))
		return
	}
	if existing == nil {
		respondError(c, booking.NewNotFoundError("warehouse", id))
		return
	}

	// Overlay the payload onto the stored document so partial updates
	// leave unmentioned fields intact.
	w := *existing
	if err := c.ShouldBindJSON(&w); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	w.ID = id
	w.TenantID = existing.TenantID
	w.CreatedAt = existing.CreatedAt
	if w.Capacity.AvailablePalletSlots > w.Capacity.TotalPalletSlots ||
		w.Capacity.AvailableAreaSqFt > w.Capacity.TotalAreaSqFt {
		respondError(c, booking.NewValidationError("capacity", "available must not exceed total"))
		return
	}
	if err := h.Repo.Update(c.Request.Context(), &w); err != nil {
		respondError(c, booking.NewUpstreamError("update warehouse", err))
		return
	}
	c.JSON(http.StatusOK, w)
}
