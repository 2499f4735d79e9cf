package registry

import (
	"fmt"

	"solar-map/internal/domain/entity"
)

// CityRegistry is the read-only catalog of known cities.
type CityRegistry interface {
	// Lookup finds a city by its exact, case-sensitive name
	Lookup(name string) (entity.City, bool)

	// All returns every city in insertion order
	All() []entity.City

	// Len returns the number of cities
	Len() int
}

type memoryCityRegistry struct {
	cities []entity.City
	index  map[string]int
}

// NewCityRegistry builds an immutable registry. Cities are copied, so later changes to the
// argument slice do not leak in. Duplicate names and invalid entries are rejected.
func NewCityRegistry(cities []entity.City) (CityRegistry, error) {
	r := &memoryCityRegistry{
		cities: make([]entity.City, 0, len(cities)),
		index:  make(map[string]int, len(cities)),
	}

	for _, city := range cities {
		if err := city.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.index[city.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", entity.ErrInvalidCity, city.Name)
		}
		if city.Insolation != nil {
			city.Insolation = entity.Insolation(*city.Insolation)
		}
		r.index[city.Name] = len(r.cities)
		r.cities = append(r.cities, city)
	}

	return r, nil
}

func (r *memoryCityRegistry) Lookup(name string) (entity.City, bool) {
	i, ok := r.index[name]
	if !ok {
		return entity.City{}, false
	}
	return copyCity(r.cities[i]), true
}

func (r *memoryCityRegistry) All() []entity.City {
	out := make([]entity.City, len(r.cities))
	for i, city := range r.cities {
		out[i] = copyCity(city)
	}
	return out
}

func (r *memoryCityRegistry) Len() int {
	return len(r.cities)
}

// copyCity detaches the insolation pointer so callers cannot mutate registry state.
func copyCity(c entity.City) entity.City {
	if c.Insolation != nil {
		c.Insolation = entity.Insolation(*c.Insolation)
	}
	return c
}
