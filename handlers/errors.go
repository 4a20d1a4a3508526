package handlers

import (
	"errors"
	"net/http"

	"storably/services/booking"
	"storably/utils"

	"github.com/gin-gonic/gin"
)

// respondError translates the domain error taxonomy into HTTP responses:
// validation 400, not found 404, upstream 502, anything else 500.
func respondError(c *gin.Context, err error) {
	var ve *booking.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{
			Message: "invalid request",
			Details: ve.Message,
			Field:   ve.Field,
		})
		return
	}

	var nfe *booking.NotFoundError
	if errors.As(err, &nfe) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{
			Message: "not found",
			Details: nfe.Error(),
		})
		return
	}

	var ue *booking.UpstreamError
	if errors.As(err, &ue) {
		utils.JSONError(c, http.StatusBadGateway, "upstream failure", ue.Error())
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}
