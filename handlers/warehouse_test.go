package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	warehouseRepo "storably/database/repository/warehouse"
	"storably/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWarehouseRepo struct {
	warehouses map[string]*models.Warehouse
	updated    *models.Warehouse
}

func (f *fakeWarehouseRepo) Create(ctx context.Context, w *models.Warehouse) error {
	f.warehouses[w.ID] = w
	return nil
}

func (f *fakeWarehouseRepo) GetByID(ctx context.Context, id string) (*models.Warehouse, error) {
	w, ok := f.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWarehouseRepo) Update(ctx context.Context, w *models.Warehouse) error {
	cp := *w
	f.updated = &cp
	f.warehouses[w.ID] = &cp
	return nil
}

func (f *fakeWarehouseRepo) List(ctx context.Context, filter warehouseRepo.WarehouseFilter) ([]models.Warehouse, error) {
	var out []models.Warehouse
	for _, w := range f.warehouses {
		out = append(out, *w)
	}
	return out, nil
}

func (f *fakeWarehouseRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.warehouses)), nil
}

func warehouseTestRouter(repo *fakeWarehouseRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWarehouseHandler(repo)
	r := gin.New()
	r.PUT("/api/warehouses/:id", h.UpdateWarehouse)
	return r
}

func seededRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: map[string]*models.Warehouse{
		"wh-1": {
			ID:       "wh-1",
			TenantID: "op-9",
			Name:     "Dockside",
			City:     "Rotterdam",
			Capacity: models.WarehouseCapacity{
				TotalPalletSlots:     1000,
				AvailablePalletSlots: 800,
				TotalAreaSqFt:        20000,
				AvailableAreaSqFt:    15000,
			},
			Active: true,
		},
	}}
}

func TestUpdateWarehousePartialPayloadKeepsFields(t *testing.T) {
	repo := seededRepo()
	r := warehouseTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/warehouses/wh-1",
		strings.NewReader(`{"name":"Dockside East"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "Dockside East", repo.updated.Name)
	assert.Equal(t, "op-9", repo.updated.TenantID)
	assert.True(t, repo.updated.Active)
	assert.Equal(t, 1000, repo.updated.Capacity.TotalPalletSlots)
	assert.Equal(t, 15000, repo.updated.Capacity.AvailableAreaSqFt)
	assert.Equal(t, "Rotterdam", repo.updated.City)
}

func TestUpdateWarehouseCannotReassignOwner(t *testing.T) {
	repo := seededRepo()
	r := warehouseTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/warehouses/wh-1",
		strings.NewReader(`{"tenantId":"op-hijack"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "op-9", repo.updated.TenantID)
}

func TestUpdateWarehouseRejectsBadCapacity(t *testing.T) {
	repo := seededRepo()
	r := warehouseTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/warehouses/wh-1",
		strings.NewReader(`{"capacity":{"totalPalletSlots":10,"availablePalletSlots":50,"totalAreaSqFt":100,"availableAreaSqFt":50}}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, repo.updated)
}

func TestUpdateWarehouseUnknownID(t *testing.T) {
	repo := seededRepo()
	r := warehouseTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/warehouses/missing",
		strings.NewReader(`{"name":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
