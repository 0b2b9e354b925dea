package log

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one line per request: method, path, status, duration.
func RequestLogger(logger *Logger) fiber.Handler {
	l := logger.WithComponent("http")

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start).String(),
		}
		if status >= 500 {
			l.Error("request", attrs...)
		} else {
			l.Info("request", attrs...)
		}
		return err
	}
}
