// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"log"
	"time"

	"storably/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureBookingIndexes creates the indexes the overlap queries rely on.
func EnsureBookingIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.DB().Collection("bookings")
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "warehouse_id", Value: 1},
				{Key: "type", Value: 1},
				{Key: "status", Value: 1},
				{Key: "start_date", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "tenant_id", Value: 1}},
		},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("booking indexes: %v", err)
	}
}
