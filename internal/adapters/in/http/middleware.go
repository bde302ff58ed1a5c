package http

import (
	"log/slog"
	"time"

	"fooddelivery/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

// RequestLogger stores a request scoped logger in the request context and
// logs one line per request once the error handler has written the response.
// It must run after the request id middleware.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			logger := base.With(
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", req.Method,
				"path", req.URL.Path,
			)
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), logger)))

			if err := next(c); err != nil {
				c.Error(err)
			}

			logger.InfoContext(c.Request().Context(), "request handled",
				"status", c.Response().Status,
				"remote_ip", c.RealIP(),
				"duration", time.Since(start),
			)
			return nil
		}
	}
}
