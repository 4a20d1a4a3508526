package claim

import (
	"context"
	"fmt"
	"strings"
	"time"

	claimRepo "storably/database/repository/claim"
	"storably/models"
	"storably/services/notification"
	"storably/services/storage"
	"storably/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// validStatusChanges mirrors the claim lifecycle:
// filed -> under-review -> resolved | denied.
var validStatusChanges = map[string][]string{
	models.ClaimStatusFiled:       {models.ClaimStatusUnderReview},
	models.ClaimStatusUnderReview: {models.ClaimStatusResolved, models.ClaimStatusDenied},
}

// ClaimService handles incident claims filed against bookings.
type ClaimService interface {
	File(ctx context.Context, claim *models.Claim, photoPaths []string) (*models.Claim, error)
	GetByID(ctx context.Context, id string) (*models.Claim, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Claim, error)
	UpdateStatus(ctx context.Context, id, status, resolution string) (*models.Claim, error)
}

// DefaultClaimService is the production implementation.
type DefaultClaimService struct {
	Repo            claimRepo.ClaimRepository
	Storage         storage.StorageService
	NotificationSvc notification.NotificationService
}

// File persists a new claim, uploading any photo evidence first.
func (s *DefaultClaimService) File(ctx context.Context, claim *models.Claim, photoPaths []string) (*models.Claim, error) {
	if strings.TrimSpace(claim.Subject) == "" {
		return nil, fmt.Errorf("claim subject is required")
	}
	if claim.BookingID == "" {
		return nil, fmt.Errorf("claim must reference a booking")
	}

	logger := utils.GetLogger()
	for _, path := range photoPaths {
		if s.Storage == nil {
			logger.Warn("claim photo skipped, storage not configured", zap.String("path", path))
			continue
		}
		url, err := s.Storage.UploadFile(ctx, path, "claims/"+claim.BookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to upload claim photo: %w", err)
		}
		claim.PhotoURLs = append(claim.PhotoURLs, url)
	}

	now := time.Now()
	claim.ID = uuid.New().String()
	claim.Status = models.ClaimStatusFiled
	claim.CreatedAt = now
	claim.UpdatedAt = now
	if err := s.Repo.Create(ctx, claim); err != nil {
		return nil, err
	}
	logger.Info("claim filed", zap.String("claimID", claim.ID), zap.String("bookingID", claim.BookingID))
	return claim, nil
}

func (s *DefaultClaimService) GetByID(ctx context.Context, id string) (*models.Claim, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultClaimService) ListByTenant(ctx context.Context, tenantID string) ([]models.Claim, error) {
	return s.Repo.ListByTenant(ctx, tenantID)
}

// UpdateStatus transitions a claim and notifies the filing tenant.
func (s *DefaultClaimService) UpdateStatus(ctx context.Context, id, status, resolution string) (*models.Claim, error) {
	claim, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, fmt.Errorf("claim %s not found", id)
	}
	if !changeAllowed(claim.Status, status) {
		return nil, fmt.Errorf("cannot move claim from %q to %q", claim.Status, status)
	}

	if err := s.Repo.UpdateStatus(ctx, id, status, resolution); err != nil {
		return nil, err
	}
	claim.Status = status
	claim.Resolution = resolution

	if s.NotificationSvc != nil {
		payload := models.PushPayload{
			TenantID: claim.TenantID,
			Title:    "Claim update",
			Body:     fmt.Sprintf("Your claim %q is now %s", claim.Subject, status),
			Data:     map[string]string{"claimId": claim.ID},
		}
		if err := s.NotificationSvc.Enqueue(ctx, payload); err != nil {
			utils.GetLogger().Error("failed to enqueue claim notification",
				zap.String("claimID", claim.ID), zap.Error(err))
		}
	}
	return claim, nil
}

func changeAllowed(from, to string) bool {
	for _, next := range validStatusChanges[from] {
		if next == to {
			return true
		}
	}
	return false
}
