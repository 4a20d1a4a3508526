package routes

import (
	"time"

	"storably/handlers"
	"storably/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.Health)

	RegisterWarehouseRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterClaimRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterWarehouseRoutes registers the warehouse catalog, availability
// and calendar endpoints.
func RegisterWarehouseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/warehouses")
	{
		// Browsing and availability are public.
		api.GET("", hb.ListWarehouses)
		api.GET("/:id", hb.GetWarehouse)
		api.GET("/:id/availability", hb.CheckAvailability)

		// Catalog and calendar management requires an operator.
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.RequireRole("operator"))
		protected.POST("", hb.CreateWarehouse)
		protected.PUT("/:id", hb.UpdateWarehouse)
		protected.GET("/:id/calendar", hb.GetCalendar)
		protected.PUT("/:id/calendar", hb.UpsertCalendarEntry)
		protected.DELETE("/:id/calendar/:date", hb.DeleteCalendarEntry)
	}
}

// RegisterBookingRoutes registers quote and booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Quotes never write and need no account.
		api.POST("/quote", hb.Quote)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("", hb.CreateBooking)
		protected.GET("", hb.ListBookings)
		protected.GET("/:id", hb.GetBooking)
		protected.PUT("/:id/confirm", hb.ConfirmBooking)
		protected.DELETE("/:id", hb.CancelBooking)
		protected.POST("/notifications/token", hb.RegisterDeviceToken)
	}
}

// RegisterInvoiceRoutes registers invoice endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("", hb.ListInvoices)
		api.GET("/:id", hb.GetInvoice)
		api.POST("/:id/pay", hb.PayInvoice)
	}
}

// RegisterClaimRoutes registers claim endpoints.
func RegisterClaimRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/claims")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("", hb.FileClaim)
		api.GET("", hb.ListClaims)
		api.GET("/:id", hb.GetClaim)
		api.PUT("/:id/status", middleware.RequireRole("operator"), hb.UpdateClaimStatus)
	}
}

// RegisterLeadRoutes registers CRM lead endpoints.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/leads")
	{
		// Lead capture backs the public contact form.
		api.POST("", hb.CaptureLead)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.RequireRole("operator"))
		protected.GET("", hb.ListLeads)
		protected.GET("/:id", hb.GetLead)
		protected.PUT("/:id/stage", hb.AdvanceLead)
	}
}

// RegisterAdminRoutes registers the admin dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AuthMiddleware(), middleware.RequireRole("operator"))
	{
		api.GET("/dashboard", hb.GetDashboard)
	}
}
