package crm

import (
	"context"
	"testing"

	"storably/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeadRepo struct {
	leads map[string]*models.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*models.Lead)}
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	cp := *lead
	f.leads[lead.ID] = &cp
	return nil
}

func (f *fakeLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *lead
	return &cp, nil
}

func (f *fakeLeadRepo) List(ctx context.Context, stage string) ([]models.Lead, error) {
	var out []models.Lead
	for _, lead := range f.leads {
		if stage == "" || lead.Stage == stage {
			out = append(out, *lead)
		}
	}
	return out, nil
}

func (f *fakeLeadRepo) Update(ctx context.Context, lead *models.Lead) error {
	cp := *lead
	f.leads[lead.ID] = &cp
	return nil
}

func (f *fakeLeadRepo) CountOpen(ctx context.Context) (int64, error) {
	var n int64
	for _, lead := range f.leads {
		if lead.Stage != models.LeadStageWon && lead.Stage != models.LeadStageLost {
			n++
		}
	}
	return n, nil
}

func TestCaptureAssignsIDAndStage(t *testing.T) {
	svc := &DefaultLeadService{Repo: newFakeLeadRepo()}

	lead, err := svc.Capture(context.Background(), &models.Lead{
		Name:   "Dana Okafor",
		Email:  "dana@example.com",
		Source: "contact-form",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, models.LeadStageNew, lead.Stage)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestCaptureRequiresNameAndEmail(t *testing.T) {
	svc := &DefaultLeadService{Repo: newFakeLeadRepo()}

	_, err := svc.Capture(context.Background(), &models.Lead{Email: "x@example.com"})
	assert.Error(t, err)

	_, err = svc.Capture(context.Background(), &models.Lead{Name: "No Email"})
	assert.Error(t, err)
}

func TestAdvanceStageFollowsPipeline(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := &DefaultLeadService{Repo: repo}

	lead, err := svc.Capture(context.Background(), &models.Lead{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	for _, stage := range []string{
		models.LeadStageContacted,
		models.LeadStageQualified,
		models.LeadStageWon,
	} {
		lead, err = svc.AdvanceStage(context.Background(), lead.ID, stage)
		require.NoError(t, err)
		assert.Equal(t, stage, lead.Stage)
	}

	// Won is terminal.
	_, err = svc.AdvanceStage(context.Background(), lead.ID, models.LeadStageLost)
	assert.Error(t, err)
}

func TestAdvanceStageRejectsSkips(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := &DefaultLeadService{Repo: repo}

	lead, err := svc.Capture(context.Background(), &models.Lead{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	_, err = svc.AdvanceStage(context.Background(), lead.ID, models.LeadStageWon)
	assert.Error(t, err)

	// Losing an open lead is always allowed.
	lead, err = svc.AdvanceStage(context.Background(), lead.ID, models.LeadStageLost)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStageLost, lead.Stage)
}

func TestAdvanceStageUnknownLead(t *testing.T) {
	svc := &DefaultLeadService{Repo: newFakeLeadRepo()}

	_, err := svc.AdvanceStage(context.Background(), "missing", models.LeadStageContacted)
	assert.Error(t, err)
}
