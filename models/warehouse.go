package models

import "time"

// WarehouseCapacity is the capacity snapshot kept on every warehouse.
// Pallet slots and area square footage are independent pools.
type WarehouseCapacity struct {
	TotalPalletSlots     int `bson:"total_pallet_slots" json:"totalPalletSlots"`
	AvailablePalletSlots int `bson:"available_pallet_slots" json:"availablePalletSlots"`
	TotalAreaSqFt        int `bson:"total_area_sqft" json:"totalAreaSqFt"`
	AvailableAreaSqFt    int `bson:"available_area_sqft" json:"availableAreaSqFt"`
}

// Warehouse is a rentable facility listed on the marketplace.
type Warehouse struct {
	ID        string            `bson:"id" json:"id"`
	TenantID  string            `bson:"tenant_id" json:"tenantId"` // owning operator account
	Name      string            `bson:"name" json:"name"`
	City      string            `bson:"city" json:"city"`
	Address   string            `bson:"address" json:"address"`
	Features  []string          `bson:"features,omitempty" json:"features,omitempty"`
	Capacity  WarehouseCapacity `bson:"capacity" json:"capacity"`
	Active    bool              `bson:"active" json:"active"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updated_at" json:"updatedAt"`
}
