package api

import (
	"go.uber.org/zap"

	"forecast-api/pkg/log"
)

// ZapHTTPLogger implements http.HTTPLogger on top of pkg/log.
type ZapHTTPLogger struct{}

// NewZapHTTPLogger logs outgoing requests through the application logger.
// Bodies are only logged at debug level.
func NewZapHTTPLogger() *ZapHTTPLogger {
	return &ZapHTTPLogger{}
}

func (l *ZapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug("http request",
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body),
	)
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debug("http response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("response_bytes", len(responseBody)),
	)
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err),
	)
}
