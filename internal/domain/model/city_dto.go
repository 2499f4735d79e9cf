package model

import "solar-map/internal/domain/entity"

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Город не найден"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// CitiesResponse lists registry names in registry order
type CitiesResponse struct {
	Success bool     `json:"success" example:"true"`
	Cities  []string `json:"cities"`
	Count   int      `json:"count" example:"49"`
}

// CityResponse describes a single city
type CityResponse struct {
	Success     bool          `json:"success" example:"true"`
	City        string        `json:"city" example:"Сочи"`
	Coordinates entity.LatLng `json:"coordinates" swaggertype:"array,number" example:"43.5855,39.7231"`
	Color       string        `json:"color" example:"#98FB98"`
}

// PotentialDTO mirrors entity.PotentialEstimate on the wire
type PotentialDTO struct {
	Daily        float64 `json:"daily" example:"6.3"`
	Monthly      float64 `json:"monthly" example:"189"`
	Yearly       float64 `json:"yearly" example:"2299.5"`
	Savings      float64 `json:"savings" example:"12.65"`
	CO2Reduction float64 `json:"co2_reduction" example:"0.92"`
}

func NewPotentialDTO(e entity.PotentialEstimate) PotentialDTO {
	return PotentialDTO{
		Daily:        e.Daily,
		Monthly:      e.Monthly,
		Yearly:       e.Yearly,
		Savings:      e.Savings,
		CO2Reduction: e.CO2Reduction,
	}
}

// SolarReport is what the city use case computes for a solar-data request
type SolarReport struct {
	City       entity.City
	Insolation float64
	Tier       entity.Tier
	Zone       string
	PanelArea  float64
	Efficiency float64
	Potential  entity.PotentialEstimate
}

// SolarDataResponse is the body of GET /api/solar-data/{name}
type SolarDataResponse struct {
	Success    bool         `json:"success" example:"true"`
	City       string       `json:"city" example:"Сочи"`
	Insolation float64      `json:"insolation" example:"3.5"`
	Tier       entity.Tier  `json:"tier" example:"high"`
	Zone       string       `json:"zone,omitempty" example:"Высокий потенциал"`
	PanelArea  float64      `json:"panel_area" example:"10"`
	Efficiency float64      `json:"efficiency" example:"0.18"`
	Potential  PotentialDTO `json:"potential"`
}

func NewSolarDataResponse(r SolarReport) SolarDataResponse {
	return SolarDataResponse{
		Success:    true,
		City:       r.City.Name,
		Insolation: r.Insolation,
		Tier:       r.Tier,
		Zone:       r.Zone,
		PanelArea:  r.PanelArea,
		Efficiency: r.Efficiency,
		Potential:  NewPotentialDTO(r.Potential),
	}
}

// SearchResponse is the body of GET /api/search
type SearchResponse struct {
	Success     bool     `json:"success" example:"true"`
	Query       string   `json:"query" example:"сан"`
	Match       string   `json:"match" example:"partial" enums:"exact,partial,not_found"`
	City        string   `json:"city,omitempty" example:"Санкт-Петербург"`
	Suggestions []string `json:"suggestions"`
}
