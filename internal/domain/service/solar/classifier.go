package solar

import "solar-map/internal/domain/entity"

// Classify maps insolation to a tier: >=3.0 high, [2.5,3.0) medium, [2.0,2.5) moderate,
// anything lower (including NaN) low.
func Classify(insolation float64) entity.Tier {
	switch {
	case insolation >= 3.0:
		return entity.TierHigh
	case insolation >= 2.5:
		return entity.TierMedium
	case insolation >= 2.0:
		return entity.TierModerate
	default:
		return entity.TierLow
	}
}

// MarkerColor is the color of a city marker in the solar variant.
func MarkerColor(insolation float64) string {
	return Classify(insolation).Color()
}
