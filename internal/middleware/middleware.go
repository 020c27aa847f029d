package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RoundTripperFunc позволяет использовать функцию как http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// LoggingTransport логирует исходящие запросы: метод, адрес, статус и длительность.
// Заголовки не логируются, в них подпись EdgeGrid.
func LoggingTransport(logger *zap.Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()

		resp, err := next.RoundTrip(r)

		duration := time.Since(start)
		if err != nil {
			logger.Debug("HTTP Request failed",
				zap.String("method", r.Method),
				zap.String("url", r.URL.Redacted()),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return nil, err
		}

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("url", r.URL.Redacted()),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration),
		}
		// -1, если длина ответа неизвестна (chunked)
		if resp.ContentLength >= 0 {
			fields = append(fields, zap.Int64("size", resp.ContentLength))
		}
		logger.Info("HTTP Request", fields...)
		return resp, nil
	})
}
