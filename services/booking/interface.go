package booking

import (
	"context"

	"storably/models"
	"storably/services/invoice"
	"storably/services/notification"
)

// BookingService is the booking-facing surface: availability checks,
// quotes, and the booking lifecycle.
type BookingService interface {
	CheckAvailability(ctx context.Context, warehouseID string, bookingType models.BookingType, quantity int, startDate, endDate string) (*models.AvailabilityResult, error)
	Quote(ctx context.Context, req models.BookingRequest) (*models.PriceBreakdown, error)
	CreateBooking(ctx context.Context, tenantID string, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Engine          *AvailabilityEngine
	Calculator      *PriceCalculator
	InvoiceSvc      invoice.InvoiceService
	NotificationSvc notification.NotificationService
}
