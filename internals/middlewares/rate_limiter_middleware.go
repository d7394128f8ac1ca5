package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "btec_backend/internals/helpers"
)

// LoginRateLimiter membatasi percobaan login per IP per menit.
// max <= 0 mematikan limiter (nil).
func LoginRateLimiter(max int) fiber.Handler {
	if max <= 0 {
		return nil
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "محاولات دخول كثيرة، حاول بعد قليل")
		},
	})
}
