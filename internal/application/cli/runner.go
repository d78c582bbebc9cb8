// Package cli drives a WeatherForecastAPI from the command line and renders the answer.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"forecast-api/internal/domain/contract"
	"forecast-api/internal/domain/entity"
	"forecast-api/internal/domain/model"
	"forecast-api/pkg/http"
	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
)

// Outcome classifies how a fetch ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeHTTPFailure
	OutcomeCancelled
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPFailure:
		return "http-failure"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "failure"
	}
}

// Classify maps a Fetch error to its Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		if _, ok := http.AsStatusError(err); ok {
			return OutcomeHTTPFailure
		}
		return OutcomeFailure
	}
}

type Runner struct {
	api     contract.WeatherForecastAPI
	out     io.Writer
	target  string
	timeout time.Duration
}

// NewRunner creates a Runner. target only labels log lines; timeout <= 0 means no per-call deadline.
func NewRunner(api contract.WeatherForecastAPI, out io.Writer, target string, timeout time.Duration) *Runner {
	return &Runner{api: api, out: out, target: target, timeout: timeout}
}

// RunOnce fetches days of forecast, prints them and returns the outcome with the underlying error.
func (r *Runner) RunOnce(ctx context.Context, days int) (Outcome, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	log.Info(msg.GetMessage("client.fetch.start", days, r.target))
	forecasts, err := r.api.Fetch(ctx, model.WeatherForecastRequest{Days: days})

	outcome := Classify(err)
	switch outcome {
	case OutcomeSuccess:
		log.Info(msg.GetMessage("client.fetch.end", len(forecasts)))
		if err := Print(r.out, forecasts); err != nil {
			return OutcomeFailure, err
		}
	case OutcomeCancelled:
		log.Warn(msg.GetMessage("client.fetch.cancelled"), zap.Error(err))
	case OutcomeHTTPFailure:
		statusErr, _ := http.AsStatusError(err)
		log.Error(msg.GetMessage("client.fetch.http-failure", statusErr.StatusCode), zap.Int("status", statusErr.StatusCode))
	default:
		log.Error(msg.GetMessage("client.fetch.failure", err), zap.Error(err))
	}
	return outcome, err
}

// Print renders forecasts as an aligned table.
func Print(out io.Writer, forecasts []entity.WeatherForecast) error {
	if len(forecasts) == 0 {
		_, err := fmt.Fprintln(out, "No forecast.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "Date\tTemp. (C)\tTemp. (F)\tSummary")
	for _, forecast := range forecasts {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", forecast.Date, forecast.TemperatureC, ToFahrenheit(forecast.TemperatureC), forecast.Summary)
	}
	return w.Flush()
}

// ToFahrenheit converts the way the forecast page displays it.
func ToFahrenheit(celsius int) int {
	return 32 + int(float64(celsius)/0.5556)
}
