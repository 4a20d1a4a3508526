package models

// WarehouseUtilization is a per-warehouse figure on the admin dashboard.
type WarehouseUtilization struct {
	WarehouseID        string `json:"warehouseId"`
	Name               string `json:"name"`
	UtilizationPercent int    `json:"utilizationPercent"`
}

// DashboardStats aggregates the figures shown on the admin dashboard.
type DashboardStats struct {
	WarehouseCount int                    `json:"warehouseCount"`
	ActiveBookings int                    `json:"activeBookings"`
	OpenClaims     int                    `json:"openClaims"`
	OpenLeads      int                    `json:"openLeads"`
	Revenue        float64                `json:"revenue"`
	Utilization    []WarehouseUtilization `json:"utilization"`
}
