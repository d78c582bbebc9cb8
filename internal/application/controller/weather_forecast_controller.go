package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"forecast-api/internal/application/middleware"
	"forecast-api/internal/domain/contract"
	"forecast-api/internal/domain/model"
	"forecast-api/internal/domain/usecase/weather"
	"forecast-api/pkg/apperror"
	"forecast-api/pkg/msg"
)

type WeatherForecastController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherForecastController(api *echo.Group, useCase weather.UseCase) *WeatherForecastController {
	return &WeatherForecastController{api: api, useCase: useCase}
}

// InitWeatherForecastRoutes initializes weather forecast routes
func (controller *WeatherForecastController) InitWeatherForecastRoutes() {
	controller.api.POST("/"+contract.FetchPath, controller.Fetch, middleware.YieldStatusCode())
}

// Fetch godoc
// @Summary Generate a weather forecast
// @Description Generate one random forecast per day, starting tomorrow. Takes 100ms per requested day.
// @Tags WeatherForecast
// @Accept json
// @Produce json
// @Param request body model.WeatherForecastRequest true "Number of days (0-100)"
// @Success 200 {array} entity.WeatherForecast "Forecast ordered by date"
// @Failure 400 "Days out of range, missing or unreadable body (empty body)"
// @Router /WeatherForecast/Fetch [post]
func (controller *WeatherForecastController) Fetch(c echo.Context) error {
	if c.Request().ContentLength == 0 {
		return apperror.BadRequest(msg.GetMessage("weather.error.invalid-body"))
	}

	var request model.WeatherForecastRequest
	if err := c.Bind(&request); err != nil {
		return apperror.BadRequest(msg.GetMessage("weather.error.invalid-body"))
	}

	forecasts, err := controller.useCase.Fetch(c.Request().Context(), request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, forecasts)
}
