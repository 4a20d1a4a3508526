package models

import "time"

// Invoice statuses.
const (
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoid   = "void"
)

// Invoice is generated per booking from its price breakdown.
type Invoice struct {
	ID              string          `bson:"id" json:"id"`
	Number          string          `bson:"number" json:"number"`
	BookingID       string          `bson:"booking_id" json:"bookingId"`
	TenantID        string          `bson:"tenant_id" json:"tenantId"`
	LineItems       []PriceLineItem `bson:"line_items" json:"lineItems"`
	Subtotal        float64         `bson:"subtotal" json:"subtotal"`
	Tax             float64         `bson:"tax" json:"tax"`
	Total           float64         `bson:"total" json:"total"`
	Currency        string          `bson:"currency" json:"currency"`
	Status          string          `bson:"status" json:"status"`
	PaymentIntentID string          `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	IssuedAt        time.Time       `bson:"issued_at" json:"issuedAt"`
	DueDate         time.Time       `bson:"due_date" json:"dueDate"`
}
