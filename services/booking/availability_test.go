package booking

import (
	"context"
	"errors"
	"testing"

	warehouseRepo "storably/database/repository/warehouse"
	"storably/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWarehouseRepo serves warehouses from a map.
type fakeWarehouseRepo struct {
	warehouses map[string]*models.Warehouse
	err        error
}

func (f *fakeWarehouseRepo) Create(ctx context.Context, w *models.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) Update(ctx context.Context, w *models.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) Count(ctx context.Context) (int64, error)              { return 0, nil }
func (f *fakeWarehouseRepo) List(ctx context.Context, filter warehouseRepo.WarehouseFilter) ([]models.Warehouse, error) {
	return nil, nil
}
func (f *fakeWarehouseRepo) GetByID(ctx context.Context, id string) (*models.Warehouse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.warehouses[id], nil
}

// fakeBookingRepo applies the same overlap predicate as the mongo query:
// start_date <= endDate AND (end_date empty OR end_date >= startDate),
// restricted to capacity-consuming statuses.
type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error          { return nil }
func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error     { return nil }
func (f *fakeBookingRepo) SetInvoiceID(ctx context.Context, id, invoiceID string) error  { return nil }
func (f *fakeBookingRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) CountByStatus(ctx context.Context, statuses []string) (int64, error) {
	return 0, nil
}
func (f *fakeBookingRepo) RevenueTotal(ctx context.Context) (float64, error) { return 0, nil }
func (f *fakeBookingRepo) ListDueForTransition(ctx context.Context, status, dateCutoff string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) GetOverlapping(ctx context.Context, warehouseID string, bookingType models.BookingType, startDate, endDate string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.WarehouseID != warehouseID || b.Type != bookingType || !b.IsActive() {
			continue
		}
		if b.StartDate <= endDate && (b.EndDate == "" || b.EndDate >= startDate) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCalendarRepo struct {
	entries []models.CalendarEntry
}

func (f *fakeCalendarRepo) Upsert(ctx context.Context, entry *models.CalendarEntry) error { return nil }
func (f *fakeCalendarRepo) Delete(ctx context.Context, warehouseID, date string) error    { return nil }
func (f *fakeCalendarRepo) GetRange(ctx context.Context, warehouseID, startDate, endDate string) ([]models.CalendarEntry, error) {
	var out []models.CalendarEntry
	for _, e := range f.entries {
		if e.WarehouseID == warehouseID && e.Date >= startDate && e.Date <= endDate {
			out = append(out, e)
		}
	}
	return out, nil
}

func palletWarehouse(id string, totalSlots int) *models.Warehouse {
	return &models.Warehouse{
		ID:   id,
		Name: "Test Warehouse",
		Capacity: models.WarehouseCapacity{
			TotalPalletSlots: totalSlots,
			TotalAreaSqFt:    10000,
		},
		Active: true,
	}
}

func newEngine(w *models.Warehouse, bookings []models.Booking, entries []models.CalendarEntry) *AvailabilityEngine {
	return &AvailabilityEngine{
		WarehouseRepo: &fakeWarehouseRepo{warehouses: map[string]*models.Warehouse{w.ID: w}},
		BookingRepo:   &fakeBookingRepo{bookings: bookings},
		CalendarRepo:  &fakeCalendarRepo{entries: entries},
	}
}

func TestResolveRejectsBadInput(t *testing.T) {
	engine := newEngine(palletWarehouse("wh-1", 100), nil, nil)

	tests := []struct {
		name      string
		typ       models.BookingType
		quantity  int
		start     string
		end       string
		wantField string
	}{
		{"unknown type", "cold-storage", 1, "2026-06-01", "2026-06-10", "type"},
		{"zero quantity", models.BookingTypePallet, 0, "2026-06-01", "2026-06-10", "quantity"},
		{"negative quantity", models.BookingTypePallet, -5, "2026-06-01", "2026-06-10", "quantity"},
		{"malformed start", models.BookingTypePallet, 1, "June 1", "2026-06-10", "startDate"},
		{"malformed end", models.BookingTypePallet, 1, "2026-06-01", "someday", "endDate"},
		{"start after end", models.BookingTypePallet, 1, "2026-06-10", "2026-06-01", "startDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Resolve(context.Background(), "wh-1", tt.typ, tt.quantity, tt.start, tt.end)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestResolveUnknownWarehouse(t *testing.T) {
	engine := newEngine(palletWarehouse("wh-1", 100), nil, nil)

	_, err := engine.Resolve(context.Background(), "missing", models.BookingTypePallet, 1, "2026-06-01", "2026-06-10")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestResolveUpstreamFailure(t *testing.T) {
	engine := newEngine(palletWarehouse("wh-1", 100), nil, nil)
	engine.WarehouseRepo = &fakeWarehouseRepo{err: errors.New("connection reset")}

	_, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 1, "2026-06-01", "2026-06-10")
	require.Error(t, err)
	var ue *UpstreamError
	assert.ErrorAs(t, err, &ue)
}

func TestResolvePartialUtilization(t *testing.T) {
	bookings := []models.Booking{{
		ID:          "b-1",
		WarehouseID: "wh-1",
		Type:        models.BookingTypePallet,
		PalletCount: 200,
		StartDate:   "2026-05-01",
		EndDate:     "2026-07-01",
		Status:      models.BookingStatusActive,
	}}
	engine := newEngine(palletWarehouse("wh-1", 1000), bookings, nil)

	res, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 700, "2026-06-01", "2026-06-10")
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 800, res.AvailableQuantity)
	assert.Equal(t, 20, res.UtilizationPercent)

	res, err = engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 900, "2026-06-01", "2026-06-10")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 800, res.AvailableQuantity)
}

func TestResolveTightestDayWins(t *testing.T) {
	// One booking covers only the tail of the queried range, a second
	// starts after the range ends and must not count at all.
	bookings := []models.Booking{
		{
			ID:          "b-overlap",
			WarehouseID: "wh-1",
			Type:        models.BookingTypePallet,
			PalletCount: 100,
			StartDate:   "2026-06-05",
			EndDate:     "2026-06-15",
			Status:      models.BookingStatusConfirmed,
		},
		{
			ID:          "b-later",
			WarehouseID: "wh-1",
			Type:        models.BookingTypePallet,
			PalletCount: 300,
			StartDate:   "2026-06-11",
			EndDate:     "2026-06-20",
			Status:      models.BookingStatusConfirmed,
		},
	}
	engine := newEngine(palletWarehouse("wh-1", 500), bookings, nil)

	res, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 450, "2026-06-01", "2026-06-10")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 400, res.AvailableQuantity)
	assert.Equal(t, 20, res.UtilizationPercent)
}

func TestResolveOpenEndedBookingConsumesEveryDate(t *testing.T) {
	bookings := []models.Booking{{
		ID:          "b-open",
		WarehouseID: "wh-1",
		Type:        models.BookingTypePallet,
		PalletCount: 60,
		StartDate:   "2026-01-01",
		Status:      models.BookingStatusActive,
	}}
	engine := newEngine(palletWarehouse("wh-1", 100), bookings, nil)

	res, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 50, "2026-06-01", "2026-06-10")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 40, res.AvailableQuantity)
}

func TestResolveCancelledBookingsDoNotCount(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:          "b-cancelled",
			WarehouseID: "wh-1",
			Type:        models.BookingTypePallet,
			PalletCount: 90,
			StartDate:   "2026-06-01",
			EndDate:     "2026-06-30",
			Status:      models.BookingStatusCancelled,
		},
		{
			ID:          "b-completed",
			WarehouseID: "wh-1",
			Type:        models.BookingTypePallet,
			PalletCount: 90,
			StartDate:   "2026-06-01",
			EndDate:     "2026-06-30",
			Status:      models.BookingStatusCompleted,
		},
	}
	engine := newEngine(palletWarehouse("wh-1", 100), bookings, nil)

	res, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 100, "2026-06-01", "2026-06-10")
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 100, res.AvailableQuantity)
	assert.Equal(t, 0, res.UtilizationPercent)
}

func TestResolveBlockedDateTakesPrecedence(t *testing.T) {
	entries := []models.CalendarEntry{{
		WarehouseID: "wh-1",
		Date:        "2026-06-03",
		IsBlocked:   true,
		Reason:      "inventory audit",
	}}
	engine := newEngine(palletWarehouse("wh-1", 1000), nil, entries)

	res, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 1, "2026-06-01", "2026-06-10")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 0, res.AvailableQuantity)
	assert.Equal(t, []string{"2026-06-03"}, res.ConflictingDates)
}

func TestResolveCalendarOverrideLowersCapacity(t *testing.T) {
	slots := 30
	entries := []models.CalendarEntry{{
		WarehouseID:          "wh-1",
		Date:                 "2026-06-05",
		AvailablePalletSlots: &slots,
	}}
	engine := newEngine(palletWarehouse("wh-1", 1000), nil, entries)

	res, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 50, "2026-06-01", "2026-06-10")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 30, res.AvailableQuantity)
}

func TestResolveOverbookedClampsToZero(t *testing.T) {
	bookings := []models.Booking{{
		ID:          "b-big",
		WarehouseID: "wh-1",
		Type:        models.BookingTypePallet,
		PalletCount: 150,
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-30",
		Status:      models.BookingStatusActive,
	}}
	engine := newEngine(palletWarehouse("wh-1", 100), bookings, nil)

	res, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 1, "2026-06-01", "2026-06-10")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 0, res.AvailableQuantity)
	assert.Equal(t, 100, res.UtilizationPercent)
}

func TestResolveAreaPoolIsIndependent(t *testing.T) {
	bookings := []models.Booking{{
		ID:          "b-pallets",
		WarehouseID: "wh-1",
		Type:        models.BookingTypePallet,
		PalletCount: 100,
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-30",
		Status:      models.BookingStatusActive,
	}}
	engine := newEngine(palletWarehouse("wh-1", 100), bookings, nil)

	res, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypeAreaRental, 5000, "2026-06-01", "2026-06-10")
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 10000, res.AvailableQuantity)
	assert.Equal(t, 0, res.UtilizationPercent)
}

func TestResolveZeroCapacityWarehouse(t *testing.T) {
	engine := newEngine(palletWarehouse("wh-1", 0), nil, nil)

	res, err := engine.Resolve(context.Background(), "wh-1", models.BookingTypePallet, 1, "2026-06-01", "2026-06-01")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 0, res.AvailableQuantity)
	assert.Equal(t, 0, res.UtilizationPercent)
}
