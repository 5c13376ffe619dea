package middleware

import (
	"log/slog"
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// RequestLogging assigns each request a correlation id, propagates it
// through the request context and response header, and emits one
// structured line per request.
func RequestLogging() fiber.Handler {
	return func(c *fiber.Ctx) error {
		correlationID := c.Get("X-Correlation-ID")
		if correlationID == "" {
			correlationID = observability.GenerateCorrelationID()
		}
		c.SetUserContext(observability.WithCorrelationID(c.UserContext(), correlationID))
		c.Set("X-Correlation-ID", correlationID)

		start := time.Now()
		err := c.Next()

		observability.Logger.Info("request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("duration", time.Since(start)),
			slog.String("correlation_id", correlationID),
		)
		return err
	}
}
