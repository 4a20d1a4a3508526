package models

import "time"

// Claim statuses.
const (
	ClaimStatusFiled       = "filed"
	ClaimStatusUnderReview = "under-review"
	ClaimStatusResolved    = "resolved"
	ClaimStatusDenied      = "denied"
)

// Claim is an incident report a tenant files against a booking.
type Claim struct {
	ID          string    `bson:"id" json:"id"`
	BookingID   string    `bson:"booking_id" json:"bookingId"`
	WarehouseID string    `bson:"warehouse_id" json:"warehouseId"`
	TenantID    string    `bson:"tenant_id" json:"tenantId"`
	Subject     string    `bson:"subject" json:"subject"`
	Description string    `bson:"description" json:"description"`
	PhotoURLs   []string  `bson:"photo_urls,omitempty" json:"photoUrls,omitempty"`
	Status      string    `bson:"status" json:"status"`
	Resolution  string    `bson:"resolution,omitempty" json:"resolution,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
