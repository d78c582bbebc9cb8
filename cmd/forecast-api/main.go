package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"forecast-api/configs"
	"forecast-api/internal/application/server"
	"forecast-api/internal/domain/usecase/health"
	"forecast-api/internal/domain/usecase/weather"
	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
	"forecast-api/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weather.Options{
		DelayPerDay: resource.GetDuration("app.forecast.delay-per-day"),
	})
	healthUseCase := health.NewHealthUseCase(resource.GetString("app.name"), nil)

	// Init infra and routes
	e := server.New(server.Config{
		ApplicationName: resource.GetString("app.name"),
		ContextPath:     resource.GetString("app.server.context-path"),
		ReadTimeout:     resource.GetDuration("app.server.read-timeout"),
		WriteTimeout:    resource.GetDuration("app.server.write-timeout"),
		SwaggerEnabled:  resource.GetBool("app.swagger.enabled"),
	}, weatherUseCase, healthUseCase)

	// Start Routes
	port := resource.GetString("app.server.port")
	log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))

	if err := server.Run(ctx, e, ":"+port, resource.GetDuration("app.server.shutdown-timeout")); err != nil {
		log.Fatal(err.Error(), zap.Error(err))
	}

	log.Info(msg.GetMessage("app.stopped", configs.Env.ApplicationName))
	_ = log.Sync()
}
