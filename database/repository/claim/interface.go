// File: database/repository/claim/interface.go
package claimRepo

import (
	"context"

	"storably/database"
	"storably/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClaimRepository interface {
	Create(ctx context.Context, claim *models.Claim) error
	GetByID(ctx context.Context, id string) (*models.Claim, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Claim, error)
	UpdateStatus(ctx context.Context, id, status, resolution string) error
	CountOpen(ctx context.Context) (int64, error)
}

type mongoClaimRepo struct {
	coll *mongo.Collection
}

// NewMongoClaimRepo constructs a new MongoDB ClaimRepository.
func NewMongoClaimRepo() ClaimRepository {
	return &mongoClaimRepo{
		coll: database.DB().Collection("claims"),
	}
}
