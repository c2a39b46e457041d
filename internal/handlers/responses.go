package handlers

import (
	"log/slog"
	"net/http"

	"movies-api/internal/errors"

	"github.com/labstack/echo/v4"
)

// TraceIDContextKey is the echo context key the request id middleware stores
// the trace id under.
const TraceIDContextKey = "trace_id"

func traceIDFrom(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the envelope for code with the status GetHTTPStatus maps it to.
// Binding and validation failures are not sent here; they are returned to the
// echo error handler.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, traceIDFrom(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs err and answers 500 with the generic SYSTEM_001 body.
func SendSystemError(c echo.Context, err error) error {
	response, cause := errors.WrapSystemError(err, traceIDFrom(c))
	slog.ErrorContext(c.Request().Context(), "unexpected handler error",
		"event_type", "system_error",
		"request_id", response.Error.TraceID,
		"path", c.Path(),
		"error", cause,
	)
	return c.JSON(http.StatusInternalServerError, response)
}
