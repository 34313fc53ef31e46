package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/constants"
	"github.com/piresc/hubber/internal/pkg/logger"
	"github.com/piresc/hubber/internal/utils"
)

// RateLimitStore is the counter backend used by the rate limiter
type RateLimitStore interface {
	IncrWithExpiry(ctx context.Context, key string, window time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Store    RateLimitStore
	Resource string        // Resource name used in the Redis key
	Limit    int           // Maximum number of requests
	Period   time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a fixed-window rate limiter backed by Redis.
// Callers are identified by the authenticated user, falling back to the client IP.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if principal, ok := PrincipalFromContext(c); ok {
				identifier = principal.UserID.String()
			}

			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, identifier)
			ctx := c.Request().Context()

			count, err := config.Store.IncrWithExpiry(ctx, key, config.Period)
			if err != nil {
				logger.ErrorCtx(ctx, "Rate limiter store failed",
					logger.String("key", key),
					logger.ErrorField(err))
				return utils.InternalServerErrorResponse(c, "Rate limiter error")
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				ttl, err := config.Store.TTL(ctx, key)
				if err != nil || ttl < 0 {
					ttl = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))

			return next(c)
		}
	}
}

// BookingRateLimiter limits booking creation per user per minute
func BookingRateLimiter(limit int, store RateLimitStore) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Store:    store,
		Resource: constants.RateLimitResourceBookings,
		Limit:    limit,
		Period:   time.Minute,
	})
}
