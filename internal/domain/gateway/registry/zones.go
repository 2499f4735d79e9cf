package registry

import "solar-map/internal/domain/entity"

func box(south, west, north, east float64) []entity.LatLng {
	return []entity.LatLng{
		{south, west}, {south, east}, {north, east}, {north, west}, {south, west},
	}
}

func zone(name string, tier entity.Tier, min, max float64, bounds []entity.LatLng) entity.SolarZone {
	return entity.SolarZone{
		Name:  name,
		Tier:  tier,
		Color: tier.Color(),
		Min:   min,
		Max:   max,
		Style: entity.ZoneStyle{
			Color:       tier.Color(),
			FillColor:   tier.Color(),
			FillOpacity: 0.25,
			Weight:      1,
		},
		Bounds: bounds,
	}
}

var solarZones = []entity.SolarZone{
	zone("Высокий потенциал", entity.TierHigh, 3.0, entity.MaxInsolation, box(41.0, 30.0, 48.0, 135.0)),
	zone("Средний потенциал", entity.TierMedium, 2.5, 3.0, box(48.0, 30.0, 55.0, 140.0)),
	zone("Умеренный потенциал", entity.TierModerate, 2.0, 2.5, box(55.0, 27.0, 62.0, 140.0)),
	zone("Низкий потенциал", entity.TierLow, 1.0, 2.0, box(62.0, 27.0, 72.0, 180.0)),
}

// SolarZones returns the zone table ordered by descending Min. The slice and its bounds are
// fresh copies.
func SolarZones() []entity.SolarZone {
	out := make([]entity.SolarZone, len(solarZones))
	for i, z := range solarZones {
		z.Bounds = append([]entity.LatLng(nil), z.Bounds...)
		out[i] = z
	}
	return out
}

// ZoneFor returns the band containing insolation. It returns false for values below the
// lowest band or at/above the highest band's upper bound.
func ZoneFor(insolation float64) (entity.SolarZone, bool) {
	for _, z := range solarZones {
		if z.Contains(insolation) {
			z.Bounds = append([]entity.LatLng(nil), z.Bounds...)
			return z, true
		}
	}
	return entity.SolarZone{}, false
}
