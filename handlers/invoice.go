package handlers

import (
	"net/http"

	"storably/services/booking"
	"storably/services/invoice"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves invoice reads and payment intents.
type InvoiceHandler struct {
	Service invoice.InvoiceService
}

func NewInvoiceHandler(svc invoice.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc}
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id := c.Param("id")
	inv, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, booking.NewUpstreamError("fetch invoice", err))
		return
	}
	if inv == nil {
		respondError(c, booking.NewNotFoundError("invoice", id))
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.Service.ListByTenant(c.Request.Context(), c.GetString("accountID"))
	if err != nil {
		respondError(c, booking.NewUpstreamError("list invoices", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// PayInvoice handles POST /api/invoices/:id/pay and returns the stripe
// client secret for the payment intent.
func (h *InvoiceHandler) PayInvoice(c *gin.Context) {
	clientSecret, err := h.Service.CreatePaymentIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, booking.NewUpstreamError("create payment intent", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
