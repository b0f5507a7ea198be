package service

import (
	"github.com/reufer-studio/marketplace-api/internal/lib/job"
	"github.com/reufer-studio/marketplace-api/internal/repository"
	"github.com/reufer-studio/marketplace-api/internal/server"
)

// Services is the container for all business-logic services.
type Services struct {
	Products *ProductService
	Orders   *OrderService
	Auth     *AuthService
	Reviews  *ReviewService
	Job      *job.JobService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Products: NewProductService(repos.Products, s.Logger),
		Orders:   NewOrderService(repos.Orders, s.Job, s.Logger),
		Auth:     NewAuthService(repos.Users, s.Job, s.Logger, s.Config.Auth.BcryptCost),
		Reviews:  NewReviewService(repos.Reviews, s.Logger),
		Job:      s.Job,
	}, nil
}
