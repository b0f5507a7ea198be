package repository

import (
	"github.com/reufer-studio/marketplace-api/internal/server"
)

// Repositories is the container for all repository instances.
type Repositories struct {
	Products *ProductRepository
	Orders   *OrderRepository
	Users    *UserRepository
	Reviews  *ReviewRepository
}

// NewRepositories constructs the repository container from the
// application container. Every repository shares the pool and the
// configured schema qualifier.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool
	schema := s.Config.Database.Schema

	return &Repositories{
		Products: NewProductRepository(pool, schema),
		Orders:   NewOrderRepository(pool, schema),
		Users:    NewUserRepository(pool, schema),
		Reviews:  NewReviewRepository(pool, schema),
	}
}
