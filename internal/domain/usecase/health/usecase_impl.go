package health

import (
	"time"

	"github.com/jonboulle/clockwork"

	"forecast-api/internal/domain/model"
)

type healthUseCase struct {
	applicationName string
	clock           clockwork.Clock
	startedAt       time.Time
}

func NewHealthUseCase(applicationName string, clock clockwork.Clock) UseCase {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &healthUseCase{
		applicationName: applicationName,
		clock:           clock,
		startedAt:       clock.Now(),
	}
}

// CheckHealth reports the service as up; forecasts have no downstream dependencies to probe.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	return model.HealthResponse{
		Status:      model.StatusUp,
		Application: useCase.applicationName,
		Uptime:      useCase.clock.Since(useCase.startedAt).Truncate(time.Second).String(),
	}
}
