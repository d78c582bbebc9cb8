package weather

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"forecast-api/internal/domain/entity"
	"forecast-api/internal/domain/model"
	"forecast-api/pkg/apperror"
	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
	"forecast-api/pkg/util/numberutils"
)

const (
	MinDays = 0
	MaxDays = 100

	MinTemperatureC = -20
	MaxTemperatureC = 54

	DefaultDelayPerDay = 100 * time.Millisecond
)

// Summaries is the fixed vocabulary forecast summaries are drawn from.
var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild", "Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// Options configures the forecast use case. Zero values fall back to the real clock,
// a randomly seeded PCG source and DefaultDelayPerDay.
type Options struct {
	Clock       clockwork.Clock
	Random      *rand.Rand
	DelayPerDay time.Duration
}

type weatherUseCase struct {
	clock       clockwork.Clock
	delayPerDay time.Duration

	// rand.Rand is not safe for concurrent use
	mu     sync.Mutex
	random *rand.Rand
}

func NewWeatherUseCase(opts Options) UseCase {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Random == nil {
		opts.Random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.DelayPerDay <= 0 {
		opts.DelayPerDay = DefaultDelayPerDay
	}

	return &weatherUseCase{
		clock:       opts.Clock,
		delayPerDay: opts.DelayPerDay,
		random:      opts.Random,
	}
}

func (useCase *weatherUseCase) Fetch(ctx context.Context, request model.WeatherForecastRequest) ([]entity.WeatherForecast, error) {
	if !numberutils.IsIntInRange(request.Days, MinDays, MaxDays) {
		return nil, apperror.BadRequest(msg.GetMessage("weather.error.invalid-days"))
	}

	log.Debug(msg.GetMessage("weather.fetch.start", request.Days), zap.Int("days", request.Days))

	delay := useCase.delayPerDay * time.Duration(request.Days)
	if err := useCase.wait(ctx, delay); err != nil {
		log.Debug(msg.GetMessage("weather.fetch.cancelled", delay), zap.Error(err))
		return nil, err
	}

	forecasts := useCase.generate(request.Days)
	log.Debug(msg.GetMessage("weather.fetch.end", len(forecasts)))
	return forecasts, nil
}

// wait blocks for d on the use case clock, or until ctx is done
func (useCase *weatherUseCase) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := useCase.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

func (useCase *weatherUseCase) generate(days int) []entity.WeatherForecast {
	today := entity.DateOf(useCase.clock.Now())
	forecasts := make([]entity.WeatherForecast, 0, days)

	useCase.mu.Lock()
	defer useCase.mu.Unlock()

	for offset := 1; offset <= days; offset++ {
		forecasts = append(forecasts, entity.WeatherForecast{
			Date:         today.AddDays(offset),
			TemperatureC: MinTemperatureC + useCase.random.IntN(MaxTemperatureC-MinTemperatureC+1),
			Summary:      Summaries[useCase.random.IntN(len(Summaries))],
		})
	}
	return forecasts
}
