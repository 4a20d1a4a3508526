// File: database/repository/claim/crud.go
package claimRepo

import (
	"context"
	"fmt"
	"time"

	"storably/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoClaimRepo) Create(ctx context.Context, claim *models.Claim) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, claim); err != nil {
		return fmt.Errorf("failed to insert claim: %w", err)
	}
	return nil
}

func (repo *mongoClaimRepo) GetByID(ctx context.Context, id string) (*models.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var claim models.Claim
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&claim)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &claim, nil
}

func (repo *mongoClaimRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"tenant_id": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch claims: %w", err)
	}
	defer cursor.Close(ctx)

	var claims []models.Claim
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, fmt.Errorf("error decoding claims: %w", err)
	}
	return claims, nil
}

func (repo *mongoClaimRepo) UpdateStatus(ctx context.Context, id, status, resolution string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"status": status, "updated_at": time.Now()}
	if resolution != "" {
		set["resolution"] = resolution
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update claim status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoClaimRepo) CountOpen(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": bson.M{"$in": bson.A{models.ClaimStatusFiled, models.ClaimStatusUnderReview}}}
	n, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count claims: %w", err)
	}
	return n, nil
}
