package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type loggerKey struct{}

// Logger puts a request-scoped slog logger in the request context carrying
// the request id, the browser session and, on /views routes, the mount id.
// It runs after RequestID and SessionID.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		attrs := []any{"request_id", c.Response().Header().Get(echo.HeaderXRequestID)}
		if sid := SessionIDFrom(c); sid != "" {
			attrs = append(attrs, "session_id", sid)
		}
		if id := c.Param("id"); id != "" {
			attrs = append(attrs, "view_id", id)
		}
		logger := slog.Default().With(attrs...)

		ctx := context.WithValue(c.Request().Context(), loggerKey{}, logger)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// FromContext returns the request logger, or the default logger outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
