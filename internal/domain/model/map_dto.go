package model

import "solar-map/internal/domain/entity"

// MapResponse is the body of the page route and GET /api/map. The layer list and view come
// from the composer; the rest describes how the query was resolved.
type MapResponse struct {
	Success     bool              `json:"success" example:"true"`
	Query       string            `json:"query" example:"сочи"`
	Match       string            `json:"match,omitempty" example:"exact" enums:"exact,partial,not_found"`
	Selected    string            `json:"selected,omitempty" example:"Сочи"`
	Suggestions []string          `json:"suggestions,omitempty"`
	View        entity.ViewState  `json:"view"`
	Layers      []entity.Layer    `json:"layers"`
	Stats       *entity.CityStats `json:"stats,omitempty"`
	Cities      []string          `json:"cities"`
	Count       int               `json:"count" example:"49"`
}
