package booking

import (
	"context"
	"fmt"
	"time"

	"storably/models"
	"storably/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) CheckAvailability(ctx context.Context, warehouseID string, bookingType models.BookingType, quantity int, startDate, endDate string) (*models.AvailabilityResult, error) {
	return s.Engine.Resolve(ctx, warehouseID, bookingType, quantity, startDate, endDate)
}

// Quote prices a request without writing anything.
func (s *DefaultBookingService) Quote(ctx context.Context, req models.BookingRequest) (*models.PriceBreakdown, error) {
	if req.WarehouseID != "" {
		warehouse, err := s.Engine.WarehouseRepo.GetByID(ctx, req.WarehouseID)
		if err != nil {
			return nil, NewUpstreamError("fetch warehouse", err)
		}
		if warehouse == nil {
			return nil, NewNotFoundError("warehouse", req.WarehouseID)
		}
	}
	return s.Calculator.Calculate(req)
}

// CreateBooking gates the write on a fresh availability check, prices
// the booking, persists it as pending, and issues its invoice. The
// check and the insert are not atomic: two concurrent requests can both
// pass the check, and resolving that is left to the storage layer.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, tenantID string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	result, err := s.Engine.Resolve(ctx, req.WarehouseID, req.Type, req.Quantity, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !result.Available {
		if len(result.ConflictingDates) > 0 {
			return nil, NewValidationError("startDate",
				fmt.Sprintf("requested range contains blocked dates: %v", result.ConflictingDates))
		}
		return nil, NewValidationError("quantity",
			fmt.Sprintf("requested %d exceeds available capacity of %d", req.Quantity, result.AvailableQuantity))
	}

	breakdown, err := s.Calculator.Calculate(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	b := &models.Booking{
		ID:            uuid.New().String(),
		WarehouseID:   req.WarehouseID,
		TenantID:      tenantID,
		Type:          req.Type,
		PalletDetails: req.PalletDetails,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        models.BookingStatusPending,
		TotalPrice:    breakdown.Total,
		Currency:      breakdown.Currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.Type == models.BookingTypeAreaRental {
		b.AreaSqFt = req.Quantity
	} else {
		b.PalletCount = req.Quantity
	}

	if err := s.Engine.BookingRepo.Create(ctx, b); err != nil {
		return nil, NewUpstreamError("persist booking", err)
	}

	inv, err := s.InvoiceSvc.GenerateForBooking(ctx, b, breakdown)
	if err != nil {
		// The booking stands; invoicing can be retried out of band.
		logger.Error("invoice generation failed",
			zap.String("bookingID", b.ID), zap.Error(err))
	} else {
		b.InvoiceID = inv.ID
		if err := s.Engine.BookingRepo.SetInvoiceID(ctx, b.ID, inv.ID); err != nil {
			logger.Error("failed to attach invoice to booking",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("warehouseID", b.WarehouseID),
		zap.String("type", string(b.Type)),
		zap.Float64("total", b.TotalPrice))
	return b, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Engine.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewUpstreamError("fetch booking", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking", id)
	}
	return b, nil
}

func (s *DefaultBookingService) ListByTenant(ctx context.Context, tenantID string) ([]models.Booking, error) {
	bookings, err := s.Engine.BookingRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, NewUpstreamError("list bookings", err)
	}
	return bookings, nil
}

// ConfirmBooking moves a pending booking to confirmed and pushes a
// confirmation to the tenant.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusPending {
		return nil, NewValidationError("status",
			fmt.Sprintf("booking is %s, only pending bookings can be confirmed", b.Status))
	}

	if err := s.Engine.BookingRepo.UpdateStatus(ctx, id, models.BookingStatusConfirmed); err != nil {
		return nil, NewUpstreamError("update booking status", err)
	}
	b.Status = models.BookingStatusConfirmed

	if s.NotificationSvc != nil {
		payload := models.PushPayload{
			TenantID: b.TenantID,
			Title:    "Booking confirmed",
			Body:     fmt.Sprintf("Your %s booking starting %s is confirmed.", b.Type, b.StartDate),
			Data:     map[string]string{"bookingId": b.ID},
		}
		if err := s.NotificationSvc.Enqueue(ctx, payload); err != nil {
			utils.GetLogger().Error("failed to enqueue confirmation push",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
	return b, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) error {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if !b.IsActive() {
		return NewValidationError("status",
			fmt.Sprintf("booking is %s and cannot be cancelled", b.Status))
	}
	if err := s.Engine.BookingRepo.UpdateStatus(ctx, id, models.BookingStatusCancelled); err != nil {
		return NewUpstreamError("update booking status", err)
	}
	return nil
}
