package entity

// Tier is the insolation class a city falls into. It drives marker color and legend entries.
type Tier string

const (
	TierHigh     Tier = "high"
	TierMedium   Tier = "medium"
	TierModerate Tier = "moderate"
	TierLow      Tier = "low"
)

var tierColors = map[Tier]string{
	TierHigh:     "#d73027",
	TierMedium:   "#fc8d59",
	TierModerate: "#fee08b",
	TierLow:      "#4575b4",
}

// Color returns the marker/legend color of the tier.
func (t Tier) Color() string {
	return tierColors[t]
}

// Rank orders tiers from low (0) to high (3).
func (t Tier) Rank() int {
	switch t {
	case TierHigh:
		return 3
	case TierMedium:
		return 2
	case TierModerate:
		return 1
	default:
		return 0
	}
}

// ZoneStyle is the static polygon style of a zone.
type ZoneStyle struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      int     `json:"weight"`
}

// SolarZone is one insolation band, covering [Min, Max).
type SolarZone struct {
	Name  string    `json:"name"`
	Tier  Tier      `json:"tier"`
	Color string    `json:"color"`
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Style ZoneStyle `json:"style"`
	// Bounds is an illustrative ring, not a real regional boundary.
	Bounds []LatLng `json:"bounds"`
}

// Contains reports whether insolation falls in [Min, Max).
func (z SolarZone) Contains(insolation float64) bool {
	return insolation >= z.Min && insolation < z.Max
}
