package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"forecast-api/internal/application/cli"
	"forecast-api/internal/application/schedule"
	"forecast-api/internal/domain/gateway/api"
	"forecast-api/pkg/http"
	"forecast-api/pkg/util/numberutils"
)

const (
	exitFailure   = 1
	exitCancelled = 2
)

func main() {
	flags := pflag.NewFlagSet("forecast-client", pflag.ExitOnError)
	flags.String("base-url", "http://localhost:8080", "forecast-api base address, including any context path")
	flags.Int("days", 5, "number of days to forecast (0-100); a positional argument overrides it")
	flags.Duration("timeout", 0, "per-request deadline, 0 to wait until interrupted")
	flags.Duration("connect-timeout", 0, "TCP connect timeout, 0 for the client default")
	flags.String("cron", "", "fetch repeatedly on this cron expression (e.g. \"@every 30s\") instead of once")
	_ = flags.Parse(os.Args[1:])

	config := viper.New()
	config.SetEnvPrefix("FORECAST")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	if err := config.BindPFlags(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}

	days := config.GetInt("days")
	if flags.NArg() > 0 {
		parsed, err := numberutils.ToIntWithError(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid day count %q\n", flags.Arg(0))
			os.Exit(exitFailure)
		}
		days = parsed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	baseURL := config.GetString("base-url")
	gateway := api.NewWeatherForecastGateway(baseURL, http.ClientOptions{
		ConnectionTimeout: config.GetDuration("connect-timeout"),
	})
	runner := cli.NewRunner(gateway, os.Stdout, baseURL, config.GetDuration("timeout"))

	if expression := config.GetString("cron"); expression != "" {
		if err := schedule.NewForecastScheduler(runner, days).Run(ctx, expression); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitFailure)
		}
		return
	}

	outcome, err := runner.RunOnce(ctx, days)
	switch outcome {
	case cli.OutcomeSuccess:
	case cli.OutcomeCancelled:
		fmt.Fprintln(os.Stderr, "cancelled")
		os.Exit(exitCancelled)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}
