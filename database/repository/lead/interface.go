// File: database/repository/lead/interface.go
package leadRepo

import (
	"context"

	"storably/database"
	"storably/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context, stage string) ([]models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) error
	CountOpen(ctx context.Context) (int64, error)
}

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo constructs a new MongoDB LeadRepository.
func NewMongoLeadRepo() LeadRepository {
	return &mongoLeadRepo{
		coll: database.DB().Collection("leads"),
	}
}
