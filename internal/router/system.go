package router

import (
	"github.com/labstack/echo/v4"

	"github.com/reufer-studio/marketplace-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business
// logic. The health check lives at the root path because that is what
// the storefront's uptime monitor already polls.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.CheckHealth)
}
