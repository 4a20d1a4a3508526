// File: database/repository/calendar/crud.go
package calendarRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"storably/database"
	"storably/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoCalendarRepo) GetRange(ctx context.Context, warehouseID, startDate, endDate string) ([]models.CalendarEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"warehouse_id": warehouseID,
		"date":         bson.M{"$gte": startDate, "$lte": endDate},
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.CalendarEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding calendar entries: %w", err)
	}
	return entries, nil
}

func (repo *mongoCalendarRepo) Upsert(ctx context.Context, entry *models.CalendarEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"warehouse_id": entry.WarehouseID, "date": entry.Date}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, filter, entry, opts); err != nil {
		return fmt.Errorf("failed to upsert calendar entry: %w", err)
	}
	return nil
}

func (repo *mongoCalendarRepo) Delete(ctx context.Context, warehouseID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"warehouse_id": warehouseID, "date": date}); err != nil {
		return fmt.Errorf("failed to delete calendar entry: %w", err)
	}
	return nil
}

// EnsureCalendarIndexes enforces one entry per warehouse per date.
func EnsureCalendarIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.DB().Collection("availability_calendar")
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "warehouse_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
		log.Printf("calendar indexes: %v", err)
	}
}
