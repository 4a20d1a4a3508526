package booking

import (
	"testing"

	"storably/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator() *PriceCalculator {
	return NewPriceCalculator(DefaultRateConfig())
}

func TestCalculatePalletWithDetails(t *testing.T) {
	// 5 GENERAL/STANDARD pallets, 50kg and 100cm each, for 10 days:
	// per-day 15 + 50*0.05 + 100*0.10 = 27.50, unit 275.00,
	// line 1375.00, tax at 7% = 96.25.
	req := models.BookingRequest{
		WarehouseID: "wh-1",
		Type:        models.BookingTypePallet,
		Quantity:    5,
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-11",
		PalletDetails: []models.PalletDetail{{
			ProductType: "GENERAL",
			Size:        "STANDARD",
			WeightKg:    50,
			HeightCm:    100,
			Quantity:    5,
		}},
	}

	res, err := testCalculator().Calculate(req)
	require.NoError(t, err)
	assert.Equal(t, 10, res.DurationDays)
	require.Len(t, res.LineItems, 1)
	assert.Equal(t, 275.0, res.LineItems[0].UnitPrice)
	assert.Equal(t, 1375.0, res.LineItems[0].LineTotal)
	assert.Equal(t, 1375.0, res.Subtotal)
	assert.Equal(t, 96.25, res.Tax)
	assert.Equal(t, 1471.25, res.Total)
}

func TestCalculatePalletWithoutDetails(t *testing.T) {
	req := models.BookingRequest{
		WarehouseID: "wh-1",
		Type:        models.BookingTypePallet,
		Quantity:    10,
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-04",
	}

	res, err := testCalculator().Calculate(req)
	require.NoError(t, err)
	assert.Equal(t, 3, res.DurationDays)
	require.Len(t, res.LineItems, 1)
	assert.Equal(t, 45.0, res.LineItems[0].UnitPrice)
	assert.Equal(t, 450.0, res.Subtotal)
	assert.Equal(t, 31.5, res.Tax)
	assert.Equal(t, 481.5, res.Total)
}

func TestCalculateUnknownRateFallsBackToDefault(t *testing.T) {
	req := models.BookingRequest{
		WarehouseID: "wh-1",
		Type:        models.BookingTypePallet,
		Quantity:    1,
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-02",
		PalletDetails: []models.PalletDetail{{
			ProductType: "UNKNOWN",
			Size:        "XL",
			Quantity:    1,
		}},
	}

	res, err := testCalculator().Calculate(req)
	require.NoError(t, err)
	assert.Equal(t, 15.0, res.Subtotal)
}

func TestCalculateAreaRental(t *testing.T) {
	// 1000 sq ft for a full year at 12.00/sqft/yr.
	req := models.BookingRequest{
		WarehouseID: "wh-1",
		Type:        models.BookingTypeAreaRental,
		Quantity:    1000,
		StartDate:   "2026-01-01",
		EndDate:     "2027-01-01",
	}

	res, err := testCalculator().Calculate(req)
	require.NoError(t, err)
	assert.Equal(t, 365, res.DurationDays)
	assert.Equal(t, 12000.0, res.Subtotal)
	assert.Equal(t, 840.0, res.Tax)
	assert.Equal(t, 12840.0, res.Total)
}

func TestCalculateAreaMinimum(t *testing.T) {
	req := models.BookingRequest{
		WarehouseID: "wh-1",
		Type:        models.BookingTypeAreaRental,
		Quantity:    499,
		StartDate:   "2026-06-01",
		EndDate:     "2026-07-01",
	}

	_, err := testCalculator().Calculate(req)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	req.Quantity = 500
	res, err := testCalculator().Calculate(req)
	require.NoError(t, err)
	assert.True(t, res.Total > 0)
}

func TestCalculateTotalEqualsSubtotalPlusTax(t *testing.T) {
	reqs := []models.BookingRequest{
		{Type: models.BookingTypePallet, Quantity: 7, StartDate: "2026-06-01", EndDate: "2026-06-14",
			PalletDetails: []models.PalletDetail{{ProductType: "FRAGILE", Size: "STANDARD", WeightKg: 33.3, HeightCm: 117.7, Quantity: 7}}},
		{Type: models.BookingTypePallet, Quantity: 3, StartDate: "2026-02-10", EndDate: "2026-02-13"},
		{Type: models.BookingTypeAreaRental, Quantity: 777, StartDate: "2026-03-01", EndDate: "2026-05-14"},
	}
	for _, req := range reqs {
		res, err := testCalculator().Calculate(req)
		require.NoError(t, err)
		assert.InDelta(t, res.Subtotal+res.Tax, res.Total, 1e-9)
		assert.Equal(t, round2(res.Subtotal), res.Subtotal)
		assert.Equal(t, round2(res.Tax), res.Tax)
		assert.Equal(t, round2(res.Total), res.Total)
	}
}

func TestCalculateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  models.BookingRequest
	}{
		{"unknown type", models.BookingRequest{Type: "cold-storage", Quantity: 1, StartDate: "2026-06-01", EndDate: "2026-06-02"}},
		{"same-day range", models.BookingRequest{Type: models.BookingTypePallet, Quantity: 1, StartDate: "2026-06-01", EndDate: "2026-06-01"}},
		{"end before start", models.BookingRequest{Type: models.BookingTypePallet, Quantity: 1, StartDate: "2026-06-10", EndDate: "2026-06-01"}},
		{"malformed date", models.BookingRequest{Type: models.BookingTypePallet, Quantity: 1, StartDate: "01/06/2026", EndDate: "2026-06-10"}},
		{"zero quantity", models.BookingRequest{Type: models.BookingTypePallet, Quantity: 0, StartDate: "2026-06-01", EndDate: "2026-06-10"}},
		{"zero detail quantity", models.BookingRequest{Type: models.BookingTypePallet, Quantity: 1, StartDate: "2026-06-01", EndDate: "2026-06-10",
			PalletDetails: []models.PalletDetail{{ProductType: "GENERAL", Size: "STANDARD", Quantity: 0}}}},
		{"negative weight", models.BookingRequest{Type: models.BookingTypePallet, Quantity: 1, StartDate: "2026-06-01", EndDate: "2026-06-10",
			PalletDetails: []models.PalletDetail{{ProductType: "GENERAL", Size: "STANDARD", WeightKg: -1, Quantity: 1}}}},
		{"area below minimum", models.BookingRequest{Type: models.BookingTypeAreaRental, Quantity: 10, StartDate: "2026-06-01", EndDate: "2026-06-10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testCalculator().Calculate(tt.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}
