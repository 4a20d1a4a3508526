package models

// CalendarEntry is a day-level availability override for a warehouse.
// One entry per warehouse per date; absence of an entry means the
// warehouse-level capacity applies with no block.
type CalendarEntry struct {
	WarehouseID          string `bson:"warehouse_id" json:"warehouseId"`
	Date                 string `bson:"date" json:"date"` // "YYYY-MM-DD"
	AvailablePalletSlots *int   `bson:"available_pallet_slots,omitempty" json:"availablePalletSlots,omitempty"`
	AvailableAreaSqFt    *int   `bson:"available_area_sqft,omitempty" json:"availableAreaSqFt,omitempty"`
	IsBlocked            bool   `bson:"is_blocked" json:"isBlocked"`
	Reason               string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// SlotsFor returns the override slot count for the given booking type,
// or nil when the entry does not override that pool.
func (e *CalendarEntry) SlotsFor(t BookingType) *int {
	if t == BookingTypeAreaRental {
		return e.AvailableAreaSqFt
	}
	return e.AvailablePalletSlots
}
