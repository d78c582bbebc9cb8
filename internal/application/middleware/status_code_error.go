package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"forecast-api/pkg/apperror"
	"forecast-api/pkg/log"
	"forecast-api/pkg/msg"
)

// YieldStatusCode answers a *apperror.StatusCodeError returned by the handler with its status code
// and an empty body. The error message is logged, never sent. Other errors pass through to echo.
func YieldStatusCode() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			code, ok := apperror.StatusCode(err)
			if !ok {
				return err
			}

			log.Debug(msg.GetMessage("app.status-code-error", code, err),
				zap.Int("status", code),
				zap.String("uri", c.Request().RequestURI),
			)
			return c.NoContent(code)
		}
	}
}
