package middleware

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/server"
)

// RateLimitMiddleware throttles credential endpoints per client IP so
// password guessing gets expensive.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs a RateLimitMiddleware.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// AuthLimiter limits login/register attempts to a small sustained rate
// per client IP with a short burst allowance. Hits are recorded as
// telemetry events when the agent is enabled.
func (r *RateLimitMiddleware) AuthLimiter() echo.MiddlewareFunc {
	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(5)),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewInternalServerError()
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.recordRateLimitHit(c.Path())
			return errs.NewTooManyRequestsError("Too many requests, slow down", true)
		},
	})
}

func (r *RateLimitMiddleware) recordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
