package controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/model"
	"solar-map/internal/domain/service/solar"
	"solar-map/internal/domain/usecase/city"
	"solar-map/pkg/util/numberutils"
)

type CityController struct {
	api     *echo.Group
	useCase city.UseCase
}

func NewCityController(api *echo.Group, useCase city.UseCase) *CityController {
	return &CityController{api: api, useCase: useCase}
}

// InitCityRoutes initializes city and solar data routes
func (controller *CityController) InitCityRoutes() {
	controller.api.GET("/api/cities", controller.FindAllCities)
	controller.api.GET("/api/city/:name", controller.FindCityByName)
	controller.api.GET("/api/solar-data/:name", controller.FindSolarData)
	controller.api.GET("/api/search", controller.Search)
}

// FindAllCities godoc
// @Summary List cities
// @Description Names of every city in the registry, in registry order
// @Tags cities
// @Produce json
// @Success 200 {object} model.CitiesResponse
// @Router /api/cities [get]
func (controller *CityController) FindAllCities(c echo.Context) error {
	names := controller.useCase.ListCities()
	return c.JSON(http.StatusOK, model.CitiesResponse{
		Success: true,
		Cities:  names,
		Count:   len(names),
	})
}

// FindCityByName godoc
// @Summary Get city by name
// @Description Coordinates and marker color of a city. The name is case-sensitive.
// @Tags cities
// @Produce json
// @Param name path string true "City name" example(Сочи)
// @Success 200 {object} model.CityResponse
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Router /api/city/{name} [get]
func (controller *CityController) FindCityByName(c echo.Context) error {
	name := pathName(c)

	found, err := controller.useCase.FindCity(name)
	if err != nil {
		return respondError(c, err, name)
	}
	return c.JSON(http.StatusOK, model.CityResponse{
		Success:     true,
		City:        found.Name,
		Coordinates: found.Coordinates,
		Color:       found.Color,
	})
}

// FindSolarData godoc
// @Summary Solar potential of a city
// @Description Daily, monthly and yearly energy, savings (thousand rubles) and CO2 reduction (tons) for a rooftop installation
// @Tags solar
// @Produce json
// @Param name path string true "City name" example(Сочи)
// @Param area query number false "Panel area in m²" default(10)
// @Param efficiency query number false "Panel efficiency in (0, 1]" default(0.18)
// @Success 200 {object} model.SolarDataResponse
// @Failure 400 {object} model.ErrorResponse "Invalid area or efficiency"
// @Failure 404 {object} model.ErrorResponse "City not found or without insolation data"
// @Router /api/solar-data/{name} [get]
func (controller *CityController) FindSolarData(c echo.Context) error {
	name := pathName(c)

	area, err := numberutils.ToFloatWithDefault(c.QueryParam("area"), solar.DefaultPanelArea)
	if err != nil {
		return respondError(c, fmt.Errorf("%w: area %q", entity.ErrInvalidParameter, c.QueryParam("area")), name)
	}
	efficiency, err := numberutils.ToFloatWithDefault(c.QueryParam("efficiency"), solar.DefaultEfficiency)
	if err != nil {
		return respondError(c, fmt.Errorf("%w: efficiency %q", entity.ErrInvalidParameter, c.QueryParam("efficiency")), name)
	}

	report, err := controller.useCase.SolarData(name, area, efficiency)
	if err != nil {
		return respondError(c, err, name)
	}
	return c.JSON(http.StatusOK, model.NewSolarDataResponse(report))
}

// Search godoc
// @Summary Search a city
// @Description Case-insensitive exact match, then substring match, otherwise up to five suggestions
// @Tags cities
// @Produce json
// @Param q query string true "Search text" example(сан)
// @Success 200 {object} model.SearchResponse
// @Failure 400 {object} model.ErrorResponse "Empty query"
// @Router /api/search [get]
func (controller *CityController) Search(c echo.Context) error {
	query := c.QueryParam("q")

	result, err := controller.useCase.Search(query)
	if err != nil {
		return respondError(c, err, query)
	}

	response := model.SearchResponse{
		Success:     true,
		Query:       result.Query,
		Match:       string(result.Kind),
		City:        result.City.Name,
		Suggestions: result.Suggestions,
	}
	if response.Suggestions == nil {
		response.Suggestions = []string{}
	}
	return c.JSON(http.StatusOK, response)
}

// pathName returns the decoded :name parameter
func pathName(c echo.Context) string {
	name := c.Param("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}
