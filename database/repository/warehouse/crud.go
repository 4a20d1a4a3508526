// File: database/repository/warehouse/crud.go
package warehouseRepo

import (
	"context"
	"fmt"
	"time"

	"storably/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoWarehouseRepo) Create(ctx context.Context, w *models.Warehouse) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, w); err != nil {
		return fmt.Errorf("failed to insert warehouse: %w", err)
	}
	return nil
}

func (repo *mongoWarehouseRepo) GetByID(ctx context.Context, id string) (*models.Warehouse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var w models.Warehouse
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&w)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &w, nil
}

func (repo *mongoWarehouseRepo) Update(ctx context.Context, w *models.Warehouse) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	w.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": w.ID}, w)
	if err != nil {
		return fmt.Errorf("failed to update warehouse: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoWarehouseRepo) List(ctx context.Context, filter WarehouseFilter) ([]models.Warehouse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.ActiveOnly {
		query["active"] = true
	}

	cursor, err := repo.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch warehouses: %w", err)
	}
	defer cursor.Close(ctx)

	var warehouses []models.Warehouse
	if err := cursor.All(ctx, &warehouses); err != nil {
		return nil, fmt.Errorf("error decoding warehouses: %w", err)
	}
	return warehouses, nil
}

func (repo *mongoWarehouseRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{"active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count warehouses: %w", err)
	}
	return n, nil
}
