package server

import (
	"context"
	"errors"
	"net/http"

	"addressregistry/internal/application/ratelimiter"
	httpports "addressregistry/internal/ports/http"

	"github.com/labstack/echo/v4"
)

type Limiter interface {
	Allow(ctx context.Context) error
}

// rateLimit rejects requests with 429 once the limiter is exhausted. A nil limiter disables it.
func rateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}
			if err := limiter.Allow(c.Request().Context()); err != nil {
				if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
					return c.JSON(http.StatusTooManyRequests, httpports.ErrorResponse{
						Error:   "Too Many Requests",
						Message: err.Error(),
					})
				}
				return err
			}
			return next(c)
		}
	}
}
