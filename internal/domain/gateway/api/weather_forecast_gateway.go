package api

import (
	"context"

	"forecast-api/internal/domain/contract"
	"forecast-api/internal/domain/entity"
	"forecast-api/internal/domain/model"
)

// WeatherForecastGateway calls a remote forecast service over HTTP
type WeatherForecastGateway interface {
	// Fetch posts the request to WeatherForecast/Fetch and decodes the JSON array answer.
	// A non-2xx answer yields *http.StatusError; a cancelled ctx yields ctx.Err().
	Fetch(ctx context.Context, request model.WeatherForecastRequest) ([]entity.WeatherForecast, error)
}

var _ contract.WeatherForecastAPI = (WeatherForecastGateway)(nil)
