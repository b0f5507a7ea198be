// Package router initializes the HTTP router (using Echo).
//
// It registers middlewares and maps the API routes to their handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reufer-studio/marketplace-api/internal/handler"
	"github.com/reufer-studio/marketplace-api/internal/middleware"
)

// New builds the echo instance: global middleware chain, error
// handler, and every route.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the request id and identity must exist before the
	// context enhancer builds the request-scoped logger, and tracing
	// wraps everything that follows.
	r.Use(middleware.RequestID())
	r.Use(m.Identity.ExtractIdentity())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(m.Tracing.EnhanceTracing())
	r.Use(m.Global.CORS())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.Recover())
	r.Use(m.Global.Secure())

	registerSystemRoutes(r, h)
	registerAPIRoutes(r, h, m)

	return r
}

// registerAPIRoutes maps the marketplace endpoints.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	r.GET("/products", handler.Handle(h.Products.Handler, h.Products.List, http.StatusOK,
		func() *handler.ListProductsRequest { return &handler.ListProductsRequest{} }))
	r.POST("/products", handler.Handle(h.Products.Handler, h.Products.Create, http.StatusOK,
		func() *handler.CreateProductRequest { return &handler.CreateProductRequest{} }))
	r.PUT("/products/:id", handler.Handle(h.Products.Handler, h.Products.Update, http.StatusOK,
		func() *handler.UpdateProductRequest { return &handler.UpdateProductRequest{} }))
	r.DELETE("/products/:id", handler.Handle(h.Products.Handler, h.Products.Delete, http.StatusOK,
		func() *handler.DeleteProductRequest { return &handler.DeleteProductRequest{} }))

	r.GET("/orders", handler.Handle(h.Orders.Handler, h.Orders.List, http.StatusOK,
		func() *handler.ListOrdersRequest { return &handler.ListOrdersRequest{} }))
	r.POST("/orders", handler.Handle(h.Orders.Handler, h.Orders.Create, http.StatusOK,
		func() *handler.CreateOrderRequest { return &handler.CreateOrderRequest{} }))
	r.PUT("/orders/:id", handler.Handle(h.Orders.Handler, h.Orders.Update, http.StatusOK,
		func() *handler.UpdateOrderRequest { return &handler.UpdateOrderRequest{} }))

	authLimiter := m.RateLimit.AuthLimiter()
	r.POST("/auth/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK,
		func() *handler.LoginRequest { return &handler.LoginRequest{} }), authLimiter)
	r.POST("/auth/register", handler.Handle(h.Auth.Handler, h.Auth.Register, http.StatusOK,
		func() *handler.RegisterRequest { return &handler.RegisterRequest{} }), authLimiter)
	r.GET("/users", handler.Handle(h.Auth.Handler, h.Auth.ListUsers, http.StatusOK,
		func() *handler.ListUsersRequest { return &handler.ListUsersRequest{} }))

	r.GET("/reviews", handler.Handle(h.Reviews.Handler, h.Reviews.List, http.StatusOK,
		func() *handler.ListReviewsRequest { return &handler.ListReviewsRequest{} }))
	r.POST("/reviews", handler.Handle(h.Reviews.Handler, h.Reviews.Create, http.StatusOK,
		func() *handler.CreateReviewRequest { return &handler.CreateReviewRequest{} }))
	r.PUT("/reviews/:id", handler.Handle(h.Reviews.Handler, h.Reviews.Moderate, http.StatusOK,
		func() *handler.ModerateReviewRequest { return &handler.ModerateReviewRequest{} }))
}
