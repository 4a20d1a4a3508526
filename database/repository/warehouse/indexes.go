// File: database/repository/warehouse/indexes.go
package warehouseRepo

import (
	"context"
	"log"
	"time"

	"storably/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureWarehouseIndexes creates the indexes the warehouse queries rely on.
func EnsureWarehouseIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.DB().Collection("warehouses")
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "city", Value: 1}, {Key: "active", Value: 1}},
		},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("warehouse indexes: %v", err)
	}
}
