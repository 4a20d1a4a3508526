package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"storably/models"
	"storably/services/booking"
	"storably/services/claim"
	"storably/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClaimHandler serves the claims/incidents endpoints.
type ClaimHandler struct {
	Service claim.ClaimService
}

func NewClaimHandler(svc claim.ClaimService) *ClaimHandler {
	return &ClaimHandler{Service: svc}
}

// FileClaim handles POST /api/claims. Multipart uploads carry photo
// evidence under the "photos" field.
func (h *ClaimHandler) FileClaim(c *gin.Context) {
	cl := models.Claim{
		BookingID:   c.PostForm("bookingId"),
		WarehouseID: c.PostForm("warehouseId"),
		Subject:     c.PostForm("subject"),
		Description: c.PostForm("description"),
		TenantID:    c.GetString("accountID"),
	}

	var photoPaths []string
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["photos"] {
			dst := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, dst); err != nil {
				utils.JSONError(c, http.StatusInternalServerError, "failed to store upload", err.Error())
				return
			}
			defer os.Remove(dst)
			photoPaths = append(photoPaths, dst)
		}
	}

	filed, err := h.Service.File(c.Request.Context(), &cl, photoPaths)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to file claim", err.Error())
		return
	}
	c.JSON(http.StatusCreated, filed)
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id := c.Param("id")
	cl, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, booking.NewUpstreamError("fetch claim", err))
		return
	}
	if cl == nil {
		respondError(c, booking.NewNotFoundError("claim", id))
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *ClaimHandler) ListClaims(c *gin.Context) {
	claims, err := h.Service.ListByTenant(c.Request.Context(), c.GetString("accountID"))
	if err != nil {
		respondError(c, booking.NewUpstreamError("list claims", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claims})
}

// UpdateClaimStatus handles PUT /api/claims/:id/status (admin only).
func (h *ClaimHandler) UpdateClaimStatus(c *gin.Context) {
	var input struct {
		Status     string `json:"status"`
		Resolution string `json:"resolution"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cl, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status, input.Resolution)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update claim", err.Error())
		return
	}
	c.JSON(http.StatusOK, cl)
}
