package middleware

import (
	"time"

	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter is a per-IP sliding window. Authenticated routes key by user
// instead so a shared campus IP does not throttle everyone at once.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if max == 0 {
		max = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			if user, ok := CurrentUser(c); ok {
				return "user:" + user.ID.String()
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusTooManyRequests,
				Message: "Muitas requisições. Tente novamente em instantes.",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
