package weather

import (
	"context"

	"forecast-api/internal/domain/contract"
	"forecast-api/internal/domain/entity"
	"forecast-api/internal/domain/model"
)

type UseCase interface {
	// Fetch validates the request, waits delayPerDay × days and generates the forecast
	Fetch(ctx context.Context, request model.WeatherForecastRequest) ([]entity.WeatherForecast, error)
}

var _ contract.WeatherForecastAPI = (UseCase)(nil)
