package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"solar-map/internal/domain/usecase/mapview"
)

type MapController struct {
	api     *echo.Group
	useCase mapview.UseCase
}

func NewMapController(api *echo.Group, useCase mapview.UseCase) *MapController {
	return &MapController{api: api, useCase: useCase}
}

// InitMapRoutes initializes the page and map routes
func (controller *MapController) InitMapRoutes() {
	controller.api.GET("/", controller.RenderMap)
	controller.api.GET("/api/map", controller.RenderMap)
}

// RenderMap godoc
// @Summary Compose the map
// @Description Layer set and view for the city matching the query, or the national view when the query is empty or unmatched
// @Tags map
// @Produce json
// @Param city query string false "City name or part of it" example(Сочи)
// @Success 200 {object} model.MapResponse
// @Router /api/map [get]
func (controller *MapController) RenderMap(c echo.Context) error {
	query := c.QueryParam("city")

	response, err := controller.useCase.Render(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err, query)
	}
	return c.JSON(http.StatusOK, response)
}
