// File: database/repository/warehouse/interface.go
package warehouseRepo

import (
	"context"

	"storably/database"
	"storably/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// WarehouseFilter narrows warehouse listings.
type WarehouseFilter struct {
	City       string
	ActiveOnly bool
}

type WarehouseRepository interface {
	Create(ctx context.Context, w *models.Warehouse) error
	GetByID(ctx context.Context, id string) (*models.Warehouse, error)
	Update(ctx context.Context, w *models.Warehouse) error
	List(ctx context.Context, filter WarehouseFilter) ([]models.Warehouse, error)
	Count(ctx context.Context) (int64, error)
}

type mongoWarehouseRepo struct {
	coll *mongo.Collection
}

// NewMongoWarehouseRepo constructs a new MongoDB WarehouseRepository.
func NewMongoWarehouseRepo() WarehouseRepository {
	return &mongoWarehouseRepo{
		coll: database.DB().Collection("warehouses"),
	}
}
