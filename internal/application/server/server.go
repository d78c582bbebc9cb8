// Package server assembles the echo instance and runs it until its context is cancelled.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"forecast-api/docs"
	"forecast-api/internal/application/controller"
	"forecast-api/internal/application/middleware"
	"forecast-api/internal/domain/usecase/health"
	"forecast-api/internal/domain/usecase/weather"
	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
)

type Config struct {
	ApplicationName string
	ContextPath     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	SwaggerEnabled  bool
}

// New builds the echo instance with middleware and every route registered under cfg.ContextPath.
func New(cfg Config, weatherUseCase weather.UseCase, healthUseCase health.UseCase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	api := e.Group(cfg.ContextPath)

	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewWeatherForecastController(api, weatherUseCase).InitWeatherForecastRoutes()

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.Title = cfg.ApplicationName
		docs.SwaggerInfo.BasePath = cfg.ContextPath + "/"
		api.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

// Run serves e on addr until ctx is cancelled, then shuts down gracefully within shutdownTimeout.
func Run(ctx context.Context, e *echo.Echo, addr string, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	log.Info(msg.GetMessage("app.stopping", addr))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
