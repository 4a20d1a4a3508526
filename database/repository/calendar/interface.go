// File: database/repository/calendar/interface.go
package calendarRepo

import (
	"context"

	"storably/database"
	"storably/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CalendarRepository interface {
	// GetRange returns every entry for the warehouse with a date inside
	// [startDate, endDate], inclusive.
	GetRange(ctx context.Context, warehouseID, startDate, endDate string) ([]models.CalendarEntry, error)
	Upsert(ctx context.Context, entry *models.CalendarEntry) error
	Delete(ctx context.Context, warehouseID, date string) error
}

type mongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo constructs a new MongoDB CalendarRepository.
func NewMongoCalendarRepo() CalendarRepository {
	return &mongoCalendarRepo{
		coll: database.DB().Collection("availability_calendar"),
	}
}
