package entity

import "errors"

var (
	// ErrEmptyQuery is returned when a search query is blank after trimming.
	ErrEmptyQuery = errors.New("empty query")
	// ErrInvalidParameter covers bad panel area, efficiency or insolation.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrCityNotFound is returned when a name is not in the registry.
	ErrCityNotFound = errors.New("city not found")
	// ErrNoSolarData is returned when a registered city has no insolation value.
	ErrNoSolarData = errors.New("no solar data for city")
	// ErrInvalidCity is returned while building a registry from a bad catalog.
	ErrInvalidCity = errors.New("invalid city")
)
