package booking

import (
	"fmt"

	"storably/config"
	"storably/models"
)

// PriceCalculator computes price breakdowns from its injected rates.
// It performs no writes and is a pure function of its inputs.
type PriceCalculator struct {
	Rates RateConfig
}

// NewPriceCalculator constructs a calculator with the given rates.
func NewPriceCalculator(rates RateConfig) *PriceCalculator {
	return &PriceCalculator{Rates: rates}
}

// Calculate produces the price breakdown for a booking request.
// Raw line totals accumulate in floating point; two-decimal rounding is
// applied once, to the figures returned for presentation.
func (pc *PriceCalculator) Calculate(req models.BookingRequest) (*models.PriceBreakdown, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, NewValidationError("startDate", "must be a YYYY-MM-DD date")
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, NewValidationError("endDate", "must be a YYYY-MM-DD date")
	}
	days := durationDays(start, end)
	if days <= 0 {
		return nil, NewValidationError("endDate", "must be after startDate")
	}

	var lineItems []models.PriceLineItem
	switch req.Type {
	case models.BookingTypePallet:
		lineItems, err = pc.palletLineItems(req, days)
	case models.BookingTypeAreaRental:
		lineItems, err = pc.areaLineItems(req, days)
	default:
		err = NewValidationError("type", "must be \"pallet\" or \"area-rental\"")
	}
	if err != nil {
		return nil, err
	}

	rawSubtotal := 0.0
	for _, item := range lineItems {
		rawSubtotal += item.LineTotal
	}
	for i := range lineItems {
		lineItems[i].UnitPrice = round2(lineItems[i].UnitPrice)
		lineItems[i].LineTotal = round2(lineItems[i].LineTotal)
	}

	subtotal := round2(rawSubtotal)
	tax := round2(subtotal * pc.Rates.TaxRate)
	return &models.PriceBreakdown{
		LineItems:    lineItems,
		DurationDays: days,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        round2(subtotal + tax),
		Currency:     config.AppConfig.Currency,
	}, nil
}

// palletLineItems prices each pallet detail line as
// (baseRate + weight and height surcharges) * quantity * days.
// A request without details falls back to one line at the default rate.
func (pc *PriceCalculator) palletLineItems(req models.BookingRequest, days int) ([]models.PriceLineItem, error) {
	if req.Quantity <= 0 {
		return nil, NewValidationError("quantity", "pallet bookings require a positive pallet count")
	}

	if len(req.PalletDetails) == 0 {
		unit := pc.Rates.DefaultBaseRate * float64(days)
		return []models.PriceLineItem{{
			Description: fmt.Sprintf("Pallet storage, %d day(s)", days),
			UnitPrice:   unit,
			Quantity:    req.Quantity,
			LineTotal:   unit * float64(req.Quantity),
		}}, nil
	}

	var items []models.PriceLineItem
	for i, d := range req.PalletDetails {
		if d.Quantity <= 0 {
			return nil, NewValidationError(fmt.Sprintf("palletDetails[%d].quantity", i), "must be greater than zero")
		}
		if d.WeightKg < 0 {
			return nil, NewValidationError(fmt.Sprintf("palletDetails[%d].weightKg", i), "must not be negative")
		}
		if d.HeightCm < 0 {
			return nil, NewValidationError(fmt.Sprintf("palletDetails[%d].heightCm", i), "must not be negative")
		}

		perDay := pc.Rates.BaseRateFor(d.ProductType, d.Size) +
			d.WeightKg*pc.Rates.WeightRatePerKg +
			d.HeightCm*pc.Rates.HeightRatePerCm
		unit := perDay * float64(days)
		items = append(items, models.PriceLineItem{
			Description: fmt.Sprintf("%s %s pallet, %d day(s)", d.ProductType, d.Size, days),
			UnitPrice:   unit,
			Quantity:    d.Quantity,
			LineTotal:   unit * float64(d.Quantity),
		})
	}
	return items, nil
}

// areaLineItems prorates the annual per-square-foot rate over the
// booked duration and enforces the minimum rentable area.
func (pc *PriceCalculator) areaLineItems(req models.BookingRequest, days int) ([]models.PriceLineItem, error) {
	if req.Quantity <= 0 {
		return nil, NewValidationError("quantity", "area rentals require a positive square footage")
	}
	if req.Quantity < pc.Rates.MinimumAreaSqFt {
		return nil, NewValidationError("quantity",
			fmt.Sprintf("area rentals require at least %d sq ft", pc.Rates.MinimumAreaSqFt))
	}

	unit := pc.Rates.AreaRatePerSqFtYear * float64(days) / 365.0
	return []models.PriceLineItem{{
		Description: fmt.Sprintf("Area rental, %d sq ft, %d day(s)", req.Quantity, days),
		UnitPrice:   unit,
		Quantity:    req.Quantity,
		LineTotal:   unit * float64(req.Quantity),
	}}, nil
}
