package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/model"
	"solar-map/pkg/log"
	"solar-map/pkg/msg"
)

// respondError maps domain errors to a status and a {success:false, error} body. subject is
// the city name or query the request was about.
func respondError(c echo.Context, err error, subject string) error {
	var (
		status  int
		message string
	)
	switch {
	case errors.Is(err, entity.ErrEmptyQuery):
		status, message = http.StatusBadRequest, msg.GetMessage("api.empty-query")
	case errors.Is(err, entity.ErrInvalidParameter):
		status, message = http.StatusBadRequest, msg.GetMessage("api.invalid-parameter", err)
	case errors.Is(err, entity.ErrCityNotFound):
		status, message = http.StatusNotFound, msg.GetMessage("api.city-not-found", subject)
	case errors.Is(err, entity.ErrNoSolarData):
		status, message = http.StatusNotFound, msg.GetMessage("api.no-solar-data", subject)
	default:
		log.Error(msg.GetMessage("api.internal-error-log", c.Request().URL.Path, err),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
		status, message = http.StatusInternalServerError, msg.GetMessage("api.internal-error")
	}
	return c.JSON(status, model.NewErrorResponse(message))
}
