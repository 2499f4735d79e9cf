package entity

import (
	"fmt"

	"solar-map/pkg/util/numberutils"
)

// MaxInsolation is the exclusive upper bound of the highest solar band, in kWh/m²/day.
const MaxInsolation = 10.0

// LatLng is a WGS84 coordinate pair. It encodes as [lat, lon] so the renderer can pass it
// straight through.
type LatLng [2]float64

func NewLatLng(lat, lon float64) LatLng {
	return LatLng{lat, lon}
}

func (p LatLng) Lat() float64 { return p[0] }
func (p LatLng) Lon() float64 { return p[1] }

// Valid reports whether the latitude is in [-90, 90] and the longitude in [-180, 180].
func (p LatLng) Valid() bool {
	return p[0] >= -90 && p[0] <= 90 && p[1] >= -180 && p[1] <= 180
}

// City is a registry entry. Values are copied out of the registry, never shared by pointer.
type City struct {
	Name        string   `json:"name" yaml:"name" mapstructure:"name"`
	Coordinates LatLng   `json:"coordinates" yaml:"coordinates" mapstructure:"coordinates"`
	Color       string   `json:"color" yaml:"color" mapstructure:"color"`
	Icon        string   `json:"icon,omitempty" yaml:"icon" mapstructure:"icon"`
	Insolation  *float64 `json:"insolation,omitempty" yaml:"insolation" mapstructure:"insolation"`
}

// HasInsolation reports whether the city carries solar data.
func (c City) HasInsolation() bool {
	return c.Insolation != nil
}

// InsolationValue returns the insolation or 0 when the city has none.
func (c City) InsolationValue() float64 {
	if c.Insolation == nil {
		return 0
	}
	return *c.Insolation
}

// Validate checks the invariants the registry relies on.
func (c City) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: city name is empty", ErrInvalidCity)
	}
	if !c.Coordinates.Valid() {
		return fmt.Errorf("%w: %s has coordinates out of range %v", ErrInvalidCity, c.Name, c.Coordinates)
	}
	if c.Insolation != nil {
		v := *c.Insolation
		if !numberutils.IsFinite(v) || v < 0 || v >= MaxInsolation {
			return fmt.Errorf("%w: %s has insolation %v outside [0, %v)", ErrInvalidCity, c.Name, v, MaxInsolation)
		}
	}
	return nil
}

// Insolation is a small helper for building City literals.
func Insolation(v float64) *float64 {
	return &v
}
