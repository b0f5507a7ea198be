package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/reufer-studio/marketplace-api/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server
// so routing setup deals with one object.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers,
	// and the global error handler.
	Global *GlobalMiddlewares

	// Identity extracts the caller's user id header for log correlation.
	Identity *IdentityMiddleware

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware. No-ops when disabled.
	Tracing *TracingMiddleware

	// RateLimit throttles the credential endpoints.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Identity:        NewIdentityMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
