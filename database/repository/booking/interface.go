// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"storably/database"
	"storably/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetInvoiceID(ctx context.Context, id, invoiceID string) error
	ListByTenant(ctx context.Context, tenantID string) ([]models.Booking, error)
	ListByWarehouse(ctx context.Context, warehouseID string) ([]models.Booking, error)
	// GetOverlapping returns bookings of the given type that overlap the
	// [startDate, endDate] range and still consume capacity. An empty endDate
	// on a stored booking means open-ended.
	GetOverlapping(ctx context.Context, warehouseID string, bookingType models.BookingType, startDate, endDate string) ([]models.Booking, error)
	CountByStatus(ctx context.Context, statuses []string) (int64, error)
	RevenueTotal(ctx context.Context) (float64, error)
	// ListDueForTransition feeds the daily status sweep.
	ListDueForTransition(ctx context.Context, status, dateCutoff string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
