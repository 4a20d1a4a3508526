package admin

import (
	"context"
	"time"

	bookingRepo "storably/database/repository/booking"
	claimRepo "storably/database/repository/claim"
	leadRepo "storably/database/repository/lead"
	warehouseRepo "storably/database/repository/warehouse"
	"storably/models"
	"storably/services/booking"
	"storably/utils"

	"go.uber.org/zap"
)

// DashboardService assembles the admin overview figures. All reads, no
// writes.
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	WarehouseRepo warehouseRepo.WarehouseRepository
	BookingRepo   bookingRepo.BookingRepository
	ClaimRepo     claimRepo.ClaimRepository
	LeadRepo      leadRepo.LeadRepository
	Engine        *booking.AvailabilityEngine
}

func (s *DefaultDashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	logger := utils.GetLogger()

	warehouseCount, err := s.WarehouseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeBookings, err := s.BookingRepo.CountByStatus(ctx, models.ActiveBookingStatuses())
	if err != nil {
		return nil, err
	}
	openClaims, err := s.ClaimRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	openLeads, err := s.LeadRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.BookingRepo.RevenueTotal(ctx)
	if err != nil {
		return nil, err
	}

	// Today's pallet utilization per active warehouse.
	today := time.Now().Format("2006-01-02")
	warehouses, err := s.WarehouseRepo.List(ctx, warehouseRepo.WarehouseFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	var utilization []models.WarehouseUtilization
	for _, w := range warehouses {
		result, err := s.Engine.Resolve(ctx, w.ID, models.BookingTypePallet, 1, today, today)
		if err != nil {
			logger.Warn("dashboard utilization skipped",
				zap.String("warehouseID", w.ID), zap.Error(err))
			continue
		}
		utilization = append(utilization, models.WarehouseUtilization{
			WarehouseID:        w.ID,
			Name:               w.Name,
			UtilizationPercent: result.UtilizationPercent,
		})
	}

	return &models.DashboardStats{
		WarehouseCount: int(warehouseCount),
		ActiveBookings: int(activeBookings),
		OpenClaims:     int(openClaims),
		OpenLeads:      int(openLeads),
		Revenue:        revenue,
		Utilization:    utilization,
	}, nil
}
