package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrPanicRecovered wraps the value recovered from a handler panic
var ErrPanicRecovered = errors.New("panic recovered")

var panicsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_panics_total",
		Help: "Total number of handler panics by route",
	},
	[]string{"endpoint"},
)

// PanicRecovery turns a handler panic into an error for the HTTP error
// handler, which renders it as SYSTEM_001 with the request's trace ID.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				slog.ErrorContext(c.Request().Context(), "Panic recovered",
					"event_type", "panic",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				panicsTotal.WithLabelValues(c.Path()).Inc()

				err = fmt.Errorf("%w: %v", ErrPanicRecovered, r)
			}()

			return next(c)
		}
	}
}
