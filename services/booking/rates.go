package booking

import (
	"fmt"

	"storably/config"
)

// RateConfig carries every pricing constant. It is injected into the
// calculator so tests and callers can substitute rates without touching
// process-wide state.
type RateConfig struct {
	// BaseRates maps "{productType}|{size}" to a per-pallet daily base rate.
	BaseRates           map[string]float64
	DefaultBaseRate     float64
	WeightRatePerKg     float64
	HeightRatePerCm     float64
	AreaRatePerSqFtYear float64
	TaxRate             float64
	MinimumAreaSqFt     int
}

func rateKey(productType, size string) string {
	return fmt.Sprintf("%s|%s", productType, size)
}

// BaseRateFor looks up the base rate for a product type and pallet size,
// falling back to the default rate when the combination is absent.
func (rc RateConfig) BaseRateFor(productType, size string) float64 {
	if rate, ok := rc.BaseRates[rateKey(productType, size)]; ok {
		return rate
	}
	return rc.DefaultBaseRate
}

// DefaultRateConfig returns the production rate table.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		BaseRates: map[string]float64{
			rateKey("GENERAL", "STANDARD"):      15.0,
			rateKey("GENERAL", "OVERSIZED"):     22.5,
			rateKey("FRAGILE", "STANDARD"):      18.0,
			rateKey("FRAGILE", "OVERSIZED"):     27.0,
			rateKey("HAZARDOUS", "STANDARD"):    32.0,
			rateKey("REFRIGERATED", "STANDARD"): 25.0,
		},
		DefaultBaseRate:     15.0,
		WeightRatePerKg:     0.05,
		HeightRatePerCm:     0.10,
		AreaRatePerSqFtYear: 12.0,
		TaxRate:             0.07,
		MinimumAreaSqFt:     500,
	}
}

// RateConfigFromAppConfig overlays configured scalar rates onto the
// default table.
func RateConfigFromAppConfig() RateConfig {
	rc := DefaultRateConfig()
	cfg := config.AppConfig
	if cfg.DefaultBaseRate > 0 {
		rc.DefaultBaseRate = cfg.DefaultBaseRate
	}
	if cfg.WeightRatePerKg > 0 {
		rc.WeightRatePerKg = cfg.WeightRatePerKg
	}
	if cfg.HeightRatePerCm > 0 {
		rc.HeightRatePerCm = cfg.HeightRatePerCm
	}
	if cfg.AreaRatePerSqFtYear > 0 {
		rc.AreaRatePerSqFtYear = cfg.AreaRatePerSqFtYear
	}
	if cfg.TaxRate > 0 {
		rc.TaxRate = cfg.TaxRate
	}
	if cfg.MinimumAreaSqFt > 0 {
		rc.MinimumAreaSqFt = cfg.MinimumAreaSqFt
	}
	return rc
}
