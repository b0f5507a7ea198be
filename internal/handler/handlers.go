package handler

import (
	"github.com/reufer-studio/marketplace-api/internal/server"
	"github.com/reufer-studio/marketplace-api/internal/service"
)

// Handlers groups all HTTP handlers so the router wires one object.
type Handlers struct {
	Health   *HealthHandler
	Products *ProductHandler
	Orders   *OrderHandler
	Auth     *AuthHandler
	Reviews  *ReviewHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Products: NewProductHandler(s, services.Products),
		Orders:   NewOrderHandler(s, services.Orders),
		Auth:     NewAuthHandler(s, services.Auth),
		Reviews:  NewReviewHandler(s, services.Reviews),
	}
}
