package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Warehouse catalog.
	ListWarehouses  gin.HandlerFunc
	GetWarehouse    gin.HandlerFunc
	CreateWarehouse gin.HandlerFunc
	UpdateWarehouse gin.HandlerFunc

	// Availability and calendar.
	CheckAvailability   gin.HandlerFunc
	GetCalendar         gin.HandlerFunc
	UpsertCalendarEntry gin.HandlerFunc
	DeleteCalendarEntry gin.HandlerFunc

	// Bookings.
	Quote          gin.HandlerFunc
	CreateBooking  gin.HandlerFunc
	GetBooking     gin.HandlerFunc
	ListBookings   gin.HandlerFunc
	ConfirmBooking gin.HandlerFunc
	CancelBooking  gin.HandlerFunc

	// Invoices.
	GetInvoice   gin.HandlerFunc
	ListInvoices gin.HandlerFunc
	PayInvoice   gin.HandlerFunc

	// Claims.
	FileClaim         gin.HandlerFunc
	GetClaim          gin.HandlerFunc
	ListClaims        gin.HandlerFunc
	UpdateClaimStatus gin.HandlerFunc

	// CRM leads.
	CaptureLead gin.HandlerFunc
	ListLeads   gin.HandlerFunc
	GetLead     gin.HandlerFunc
	AdvanceLead gin.HandlerFunc

	// Notifications.
	RegisterDeviceToken gin.HandlerFunc

	// Admin.
	GetDashboard gin.HandlerFunc
}
