package usecase

import (
	"math"

	"github.com/TimSpecFlow/door-builder-app/internal/domain"
)

// defaultBasePricePerSqFt is the fallback slab price when none is configured.
const defaultBasePricePerSqFt = 50.0

// materialMultipliers scale the area price by door material. Unlisted
// materials price at 1.0.
var materialMultipliers = map[string]float64{
	domain.MaterialWood:       1.0,
	domain.MaterialSteel:      1.5,
	domain.MaterialFiberglass: 1.2,
}

// hardwareCosts are flat per-item costs keyed by canonical hardware token.
// Unrecognized hardware adds nothing.
var hardwareCosts = map[string]float64{
	domain.HardwareHinges:  10,
	domain.HardwareHandle:  25,
	domain.HardwareLockset: 40,
}

// EstimateServiceConfig holds configuration for the price estimator.
type EstimateServiceConfig struct {
	BasePricePerSqFt float64
}

// EstimateService computes a simple area-based price estimate from a door
// specification. It is independent of the recommendation engine and shares
// only the normalized specification with it.
type EstimateService struct {
	basePerSqFt float64
}

// NewEstimateService creates a price estimator with the given configuration.
func NewEstimateService(config EstimateServiceConfig) *EstimateService {
	base := config.BasePricePerSqFt
	if base <= 0 {
		base = defaultBasePricePerSqFt
	}
	return &EstimateService{basePerSqFt: base}
}

// EstimateBreakdown itemizes how an estimate was computed.
type EstimateBreakdown struct {
	AreaSqFt           float64 `json:"areaSqFt"`
	BasePrice          float64 `json:"basePrice"`
	MaterialMultiplier float64 `json:"materialMultiplier"`
	HardwareCost       float64 `json:"hardwareCost"`
	Estimate           float64 `json:"estimate"`
}

// Estimate prices a door: area in square feet times the base price, scaled
// by the material multiplier, plus flat hardware costs. Values are rounded
// to cents.
func (s *EstimateService) Estimate(spec *domain.DoorSpecification) *EstimateBreakdown {
	area := spec.Width * spec.Height / 144.0

	multiplier, ok := materialMultipliers[spec.Material]
	if !ok {
		multiplier = 1.0
	}

	base := area * s.basePerSqFt * multiplier

	var hardware float64
	for _, h := range spec.Hardware {
		hardware += hardwareCosts[h]
	}

	return &EstimateBreakdown{
		AreaSqFt:           roundCents(area),
		BasePrice:          roundCents(base),
		MaterialMultiplier: multiplier,
		HardwareCost:       roundCents(hardware),
		Estimate:           roundCents(base + hardware),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
