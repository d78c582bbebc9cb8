// Package contract holds the operations shared by the forecast server and its clients.
package contract

import (
	"context"

	"forecast-api/internal/domain/entity"
	"forecast-api/internal/domain/model"
)

// WeatherForecastAPI is implemented by the server-side use case and by the HTTP client gateway,
// so both ends agree on request and response shapes at compile time.
type WeatherForecastAPI interface {
	// Fetch returns request.Days forecasts ordered from tomorrow. Cancelling ctx aborts the call
	// with ctx.Err() and no partial result.
	Fetch(ctx context.Context, request model.WeatherForecastRequest) ([]entity.WeatherForecast, error)
}

// FetchPath is the route of Fetch relative to the API base address.
const FetchPath = "WeatherForecast/Fetch"
