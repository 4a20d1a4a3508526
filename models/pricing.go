package models

// PalletDetail describes one pallet line in a pallet booking.
type PalletDetail struct {
	WeightKg    float64 `bson:"weight_kg" json:"weightKg"`
	HeightCm    float64 `bson:"height_cm" json:"heightCm"`
	ProductType string  `bson:"product_type" json:"productType"`
	Size        string  `bson:"size" json:"size"`
	Quantity    int     `bson:"quantity" json:"quantity"`
}

// PriceLineItem is one row of a price breakdown.
type PriceLineItem struct {
	Description string  `bson:"description" json:"description"`
	UnitPrice   float64 `bson:"unit_price" json:"unitPrice"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	LineTotal   float64 `bson:"line_total" json:"lineTotal"`
}

// PriceBreakdown is the ephemeral result of a price calculation.
// Monetary values carry two-decimal rounding applied at this final step only.
type PriceBreakdown struct {
	LineItems    []PriceLineItem `json:"lineItems"`
	DurationDays int             `json:"durationDays"`
	Subtotal     float64         `json:"subtotal"`
	Tax          float64         `json:"tax"`
	Total        float64         `json:"total"`
	Currency     string          `json:"currency"`
}

// AvailabilityResult is the outcome of resolving capacity for a date range.
type AvailabilityResult struct {
	Available          bool     `json:"available"`
	AvailableQuantity  int      `json:"availableQuantity"`
	UtilizationPercent int      `json:"utilizationPercent"`
	ConflictingDates   []string `json:"conflictingDates,omitempty"`
}
