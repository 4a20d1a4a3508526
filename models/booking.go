package models

import "time"

// BookingType distinguishes the two capacity pools a booking can consume.
type BookingType string

const (
	BookingTypePallet     BookingType = "pallet"
	BookingTypeAreaRental BookingType = "area-rental"
)

// Booking statuses. Only the active set counts toward consumed capacity.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// ActiveBookingStatuses returns the statuses that consume warehouse capacity.
func ActiveBookingStatuses() []string {
	return []string{BookingStatusPending, BookingStatusConfirmed, BookingStatusActive}
}

// Booking represents a pallet-storage or area-rental booking.
// Dates use the "YYYY-MM-DD" format; an empty EndDate means open-ended.
type Booking struct {
	ID            string         `bson:"id" json:"id"`
	WarehouseID   string         `bson:"warehouse_id" json:"warehouseId"`
	TenantID      string         `bson:"tenant_id" json:"tenantId"` // customer account that booked
	Type          BookingType    `bson:"type" json:"type"`
	PalletCount   int            `bson:"pallet_count,omitempty" json:"palletCount,omitempty"`
	AreaSqFt      int            `bson:"area_sqft,omitempty" json:"areaSqFt,omitempty"`
	PalletDetails []PalletDetail `bson:"pallet_details,omitempty" json:"palletDetails,omitempty"`
	StartDate     string         `bson:"start_date" json:"startDate"`
	EndDate       string         `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Status        string         `bson:"status" json:"status"`
	TotalPrice    float64        `bson:"total_price" json:"totalPrice"`
	Currency      string         `bson:"currency" json:"currency"`
	InvoiceID     string         `bson:"invoice_id,omitempty" json:"invoiceId,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}

// Quantity returns the consumed units for the booking's type.
func (b *Booking) Quantity() int {
	if b.Type == BookingTypeAreaRental {
		return b.AreaSqFt
	}
	return b.PalletCount
}

// IsActive reports whether the booking still consumes capacity.
func (b *Booking) IsActive() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusActive:
		return true
	}
	return false
}

// BookingRequest is the client payload for quotes and booking creation.
type BookingRequest struct {
	WarehouseID   string         `json:"warehouseId"`
	Type          BookingType    `json:"type"`
	Quantity      int            `json:"quantity"` // pallet count or area square feet
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	PalletDetails []PalletDetail `json:"palletDetails,omitempty"`
}
