package city

import (
	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/model"
	"solar-map/internal/domain/service/search"
)

type UseCase interface {
	// ListCities returns every city name in registry order
	ListCities() []string

	// ListCitiesAlphabetically returns every city name sorted with Russian collation
	ListCitiesAlphabetically() []string

	// FindCity looks a city up by its exact name
	FindCity(name string) (entity.City, error)

	// SolarData estimates the rooftop potential of a city for the given panel parameters
	SolarData(name string, panelArea, efficiency float64) (model.SolarReport, error)

	// Search resolves a free-text query to a city or a list of suggestions
	Search(query string) (search.MatchResult, error)
}
