package middleware

import (
	"fmt"
	"time"

	"github.com/HarminderDhillon/twitter-clone/internal/cache"
	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RateLimit caps each client IP at max requests per window using a Redis
// counter. When Redis is unavailable requests pass through; the limiter
// protects capacity, it is not a security boundary.
func RateLimit(max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		client := cache.GetClient()
		if client == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s", c.IP())
		ctx := c.UserContext()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			return c.Next()
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}
		if count > int64(max) {
			return models.RespondWithError(c, fiber.StatusTooManyRequests,
				models.NewValidationError("Rate limit exceeded, try again later"))
		}
		return c.Next()
	}
}
