package booking

import (
	"context"
	"math"

	bookingRepo "storably/database/repository/booking"
	calendarRepo "storably/database/repository/calendar"
	warehouseRepo "storably/database/repository/warehouse"
	"storably/models"
	"storably/utils"

	"go.uber.org/zap"
)

// AvailabilityEngine resolves whether a warehouse can absorb a booking
// over a date range. It is read-only and makes no at-most-one-booking
// guarantee; enforcing that belongs to the storage layer.
type AvailabilityEngine struct {
	WarehouseRepo warehouseRepo.WarehouseRepository
	BookingRepo   bookingRepo.BookingRepository
	CalendarRepo  calendarRepo.CalendarRepository
}

// Resolve computes the available quantity for the requested type across
// [startDate, endDate]. The range's available quantity is the minimum
// across all dates in range: the booking must fit on every day it
// occupies. Explicitly blocked calendar dates make the whole range
// unavailable regardless of raw capacity.
func (e *AvailabilityEngine) Resolve(ctx context.Context, warehouseID string, bookingType models.BookingType, quantity int, startDate, endDate string) (*models.AvailabilityResult, error) {
	logger := utils.GetLogger()

	if bookingType != models.BookingTypePallet && bookingType != models.BookingTypeAreaRental {
		return nil, NewValidationError("type", "must be \"pallet\" or \"area-rental\"")
	}
	if quantity <= 0 {
		return nil, NewValidationError("quantity", "must be greater than zero")
	}
	start, err := parseDate(startDate)
	if err != nil {
		return nil, NewValidationError("startDate", "must be a YYYY-MM-DD date")
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, NewValidationError("endDate", "must be a YYYY-MM-DD date")
	}
	if start.After(end) {
		return nil, NewValidationError("startDate", "must not be after endDate")
	}

	warehouse, err := e.WarehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, NewUpstreamError("fetch warehouse", err)
	}
	if warehouse == nil {
		return nil, NewNotFoundError("warehouse", warehouseID)
	}
	total := totalCapacityFor(warehouse, bookingType)

	overlapping, err := e.BookingRepo.GetOverlapping(ctx, warehouseID, bookingType, startDate, endDate)
	if err != nil {
		return nil, NewUpstreamError("fetch overlapping bookings", err)
	}

	entries, err := e.CalendarRepo.GetRange(ctx, warehouseID, startDate, endDate)
	if err != nil {
		return nil, NewUpstreamError("fetch calendar entries", err)
	}
	entryByDate := make(map[string]models.CalendarEntry, len(entries))
	var blockedDates []string
	for _, entry := range entries {
		entryByDate[entry.Date] = entry
		if entry.IsBlocked {
			blockedDates = append(blockedDates, entry.Date)
		}
	}

	// Consumed capacity over the whole range drives the utilization figure.
	consumed := 0
	for i := range overlapping {
		consumed += overlapping[i].Quantity()
	}

	if len(blockedDates) > 0 {
		logger.Debug("availability blocked by calendar",
			zap.String("warehouseID", warehouseID),
			zap.Strings("blockedDates", blockedDates))
		return &models.AvailabilityResult{
			Available:          false,
			AvailableQuantity:  0,
			UtilizationPercent: utilizationPercent(consumed, total),
			ConflictingDates:   blockedDates,
		}, nil
	}

	// Tightest day wins: the booking must fit on every date it occupies.
	availableQuantity := math.MaxInt
	for _, date := range dateRange(start, end) {
		consumedAt := 0
		for i := range overlapping {
			if bookingCoversDate(&overlapping[i], date) {
				consumedAt += overlapping[i].Quantity()
			}
		}
		avail := total - consumedAt
		if entry, ok := entryByDate[date]; ok {
			if slots := entry.SlotsFor(bookingType); slots != nil && *slots < avail {
				avail = *slots
			}
		}
		if avail < availableQuantity {
			availableQuantity = avail
		}
	}
	if availableQuantity < 0 {
		availableQuantity = 0
	}

	return &models.AvailabilityResult{
		Available:          availableQuantity >= quantity,
		AvailableQuantity:  availableQuantity,
		UtilizationPercent: utilizationPercent(consumed, total),
	}, nil
}

// bookingCoversDate checks whether the booking occupies the given date.
// ISO dates compare correctly as strings; an empty end date means the
// booking is open-ended.
func bookingCoversDate(b *models.Booking, date string) bool {
	return b.StartDate <= date && (b.EndDate == "" || b.EndDate >= date)
}

func totalCapacityFor(w *models.Warehouse, t models.BookingType) int {
	if t == models.BookingTypeAreaRental {
		return w.Capacity.TotalAreaSqFt
	}
	return w.Capacity.TotalPalletSlots
}

// utilizationPercent rounds consumed/total to a whole percentage,
// clamped to [0, 100]. Zero total capacity yields zero.
func utilizationPercent(consumed, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(consumed) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
