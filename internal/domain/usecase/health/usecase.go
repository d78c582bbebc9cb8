package health

import "forecast-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
