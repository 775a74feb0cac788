package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/crimsng/crims-api/internal/application/dto"
)

// NewLoginLimiter builds the fixed-window rate limiter applied to the login
// route, keyed by client address. It runs before credential checking.
// storage is injectable: nil uses the in-process memory store (single
// instance); pass a shared fiber.Storage for multi-instance deployments.
func NewLoginLimiter(max int, window time.Duration, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		Storage:    storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.MessageResponse{
				Message: "Too many login attempts. Please try again later.",
			})
		},
	})
}
