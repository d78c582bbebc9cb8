package api

import (
	"context"
	"fmt"

	"forecast-api/internal/domain/contract"
	"forecast-api/internal/domain/entity"
	"forecast-api/internal/domain/model"
	"forecast-api/pkg/http"
)

// weatherForecastGatewayImpl implements the WeatherForecastGateway interface
type weatherForecastGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherForecastGateway creates a new instance of WeatherForecastGateway with HTTP client
func NewWeatherForecastGateway(baseUrl string, clientOptions http.ClientOptions) WeatherForecastGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = NewZapHTTPLogger()
	}

	return &weatherForecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

func (g *weatherForecastGatewayImpl) Fetch(ctx context.Context, request model.WeatherForecastRequest) ([]entity.WeatherForecast, error) {
	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath(contract.FetchPath).
		WithBody(request).
		WithSuccessResp(&[]entity.WeatherForecast{}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch weather forecast: %w", err)
	}

	response, ok := successResp.(*[]entity.WeatherForecast)
	if !ok || response == nil || *response == nil {
		return []entity.WeatherForecast{}, nil
	}
	return *response, nil
}
