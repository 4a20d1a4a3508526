package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storably/config"
	"storably/cron"
	"storably/database"
	bookingRepoPkg "storably/database/repository/booking"
	calendarRepoPkg "storably/database/repository/calendar"
	claimRepoPkg "storably/database/repository/claim"
	invoiceRepoPkg "storably/database/repository/invoice"
	leadRepoPkg "storably/database/repository/lead"
	warehouseRepoPkg "storably/database/repository/warehouse"
	"storably/handlers"
	"storably/middleware"
	"storably/routes"
	"storably/services/admin"
	"storably/services/booking"
	"storably/services/claim"
	"storably/services/crm"
	"storably/services/invoice"
	"storably/services/notification"
	"storably/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Warn("cloudinary not configured, claim photo upload disabled", zap.Error(err))
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	warehouseRepo := warehouseRepoPkg.NewMongoWarehouseRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	calendarRepo := calendarRepoPkg.NewMongoCalendarRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	leadRepo := leadRepoPkg.NewMongoLeadRepo()
	claimRepo := claimRepoPkg.NewMongoClaimRepo()

	warehouseRepoPkg.EnsureWarehouseIndexes()
	bookingRepoPkg.EnsureBookingIndexes()
	calendarRepoPkg.EnsureCalendarIndexes()

	// services.
	taskClient := cron.NewTaskClient()
	notificationService := notification.NewDefaultNotificationService(
		taskClient, utils.FCMClient, utils.GetCache(),
	)

	invoiceService := &invoice.DefaultInvoiceService{
		Repo: invoiceRepo,
	}

	availabilityEngine := &booking.AvailabilityEngine{
		WarehouseRepo: warehouseRepo,
		BookingRepo:   bookingRepo,
		CalendarRepo:  calendarRepo,
	}
	priceCalculator := booking.NewPriceCalculator(booking.RateConfigFromAppConfig())

	bookingService := &booking.DefaultBookingService{
		Engine:          availabilityEngine,
		Calculator:      priceCalculator,
		InvoiceSvc:      invoiceService,
		NotificationSvc: notificationService,
	}

	leadService := &crm.DefaultLeadService{
		Repo: leadRepo,
	}

	claimService := &claim.DefaultClaimService{
		Repo:            claimRepo,
		Storage:         storageService,
		NotificationSvc: notificationService,
	}

	dashboardService := &admin.DefaultDashboardService{
		WarehouseRepo: warehouseRepo,
		BookingRepo:   bookingRepo,
		ClaimRepo:     claimRepo,
		LeadRepo:      leadRepo,
		Engine:        availabilityEngine,
	}

	// handlers.
	warehouseHandler := handlers.NewWarehouseHandler(warehouseRepo)
	availabilityHandler := handlers.NewAvailabilityHandler(bookingService, utils.GetCache())
	calendarHandler := handlers.NewCalendarHandler(calendarRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	claimHandler := handlers.NewClaimHandler(claimService)
	leadHandler := handlers.NewLeadHandler(leadService)
	adminHandler := handlers.NewAdminHandler(dashboardService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Warehouse catalog.
		ListWarehouses:  warehouseHandler.ListWarehouses,
		GetWarehouse:    warehouseHandler.GetWarehouse,
		CreateWarehouse: warehouseHandler.CreateWarehouse,
		UpdateWarehouse: warehouseHandler.UpdateWarehouse,

		// Availability and calendar.
		CheckAvailability:   availabilityHandler.CheckAvailability,
		GetCalendar:         calendarHandler.GetCalendar,
		UpsertCalendarEntry: calendarHandler.UpsertEntry,
		DeleteCalendarEntry: calendarHandler.DeleteEntry,

		// Bookings.
		Quote:          bookingHandler.Quote,
		CreateBooking:  bookingHandler.CreateBooking,
		GetBooking:     bookingHandler.GetBooking,
		ListBookings:   bookingHandler.ListBookings,
		ConfirmBooking: bookingHandler.ConfirmBooking,
		CancelBooking:  bookingHandler.CancelBooking,

		// Invoices.
		GetInvoice:   invoiceHandler.GetInvoice,
		ListInvoices: invoiceHandler.ListInvoices,
		PayInvoice:   invoiceHandler.PayInvoice,

		// Claims.
		FileClaim:         claimHandler.FileClaim,
		GetClaim:          claimHandler.GetClaim,
		ListClaims:        claimHandler.ListClaims,
		UpdateClaimStatus: claimHandler.UpdateClaimStatus,

		// CRM leads.
		CaptureLead: leadHandler.CaptureLead,
		ListLeads:   leadHandler.ListLeads,
		GetLead:     leadHandler.GetLead,
		AdvanceLead: leadHandler.AdvanceLead,

		// Notifications.
		RegisterDeviceToken: notificationHandler.RegisterDeviceToken,

		// Admin.
		GetDashboard: adminHandler.GetDashboard,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitPushWorker(notificationService)
	lifecycle := cron.StartLifecycleSweep(bookingRepo)
	defer lifecycle.Stop()
	utils.StartHealthMonitor(database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
