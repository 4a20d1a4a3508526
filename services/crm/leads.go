package crm

import (
	"context"
	"fmt"
	"strings"
	"time"

	leadRepo "storably/database/repository/lead"
	"storably/models"
	"storably/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedTransitions defines the lead pipeline: forward movement plus
// a terminal "lost" from any open stage.
var allowedTransitions = map[string][]string{
	models.LeadStageNew:       {models.LeadStageContacted, models.LeadStageLost},
	models.LeadStageContacted: {models.LeadStageQualified, models.LeadStageLost},
	models.LeadStageQualified: {models.LeadStageWon, models.LeadStageLost},
}

// LeadService manages the CRM lead pipeline.
type LeadService interface {
	Capture(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context, stage string) ([]models.Lead, error)
	AdvanceStage(ctx context.Context, id, stage string) (*models.Lead, error)
}

// DefaultLeadService is the production implementation.
type DefaultLeadService struct {
	Repo leadRepo.LeadRepository
}

func (s *DefaultLeadService) Capture(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if strings.TrimSpace(lead.Name) == "" {
		return nil, fmt.Errorf("lead name is required")
	}
	if strings.TrimSpace(lead.Email) == "" {
		return nil, fmt.Errorf("lead email is required")
	}

	now := time.Now()
	lead.ID = uuid.New().String()
	lead.Stage = models.LeadStageNew
	lead.CreatedAt = now
	lead.UpdatedAt = now
	if err := s.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("lead captured",
		zap.String("leadID", lead.ID), zap.String("source", lead.Source))
	return lead, nil
}

func (s *DefaultLeadService) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultLeadService) List(ctx context.Context, stage string) ([]models.Lead, error) {
	return s.Repo.List(ctx, stage)
}

// AdvanceStage moves a lead through the pipeline, rejecting transitions
// the pipeline does not define.
func (s *DefaultLeadService) AdvanceStage(ctx context.Context, id, stage string) (*models.Lead, error) {
	lead, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, fmt.Errorf("lead %s not found", id)
	}
	if !transitionAllowed(lead.Stage, stage) {
		return nil, fmt.Errorf("cannot move lead from %q to %q", lead.Stage, stage)
	}
	lead.Stage = stage
	if err := s.Repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
