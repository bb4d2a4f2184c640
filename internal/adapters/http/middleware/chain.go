package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/ianto3/projectboard/internal/platform/telemetry"
)

// Pipeline returns the global middleware every board route runs under,
// outermost first. Timeout is not part of it: the router adds Timeout per
// group so the event stream can stay open.
func Pipeline(logger *slog.Logger, metrics *telemetry.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
}

// Chain composes middleware so the first argument is the outermost:
//
//	Chain(Pipeline(logger, metrics)...)(handler)
//
// runs Recovery first on the way in and last on the way out. Nil entries
// are skipped, which lets callers drop an optional stage in place.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			if mw != nil {
				handler = mw(handler)
			}
		}
		return handler
	}
}
