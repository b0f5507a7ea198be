package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/reufer-studio/marketplace-api/internal/repository"
	"github.com/reufer-studio/marketplace-api/internal/server"
	"github.com/reufer-studio/marketplace-api/internal/service"
	"github.com/reufer-studio/marketplace-api/internal/validation"
)

// AuthHandler exposes login, registration, and the user listing.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validation.Struct(r) }

// Login verifies credentials and returns the caller's identity. No
// token is issued; the storefront keeps the identity client-side.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (*service.AuthResult, error) {
	return h.auth.Login(c.Request().Context(), req.Email, req.Password)
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *RegisterRequest) Validate() error { return validation.Struct(r) }

// Register creates an account with the client role.
func (h *AuthHandler) Register(c echo.Context, req *RegisterRequest) (*service.AuthResult, error) {
	return h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password)
}

// ListUsersRequest is empty; the listing takes no filters.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error { return nil }

// ListUsers returns every profile, credentials excluded.
func (h *AuthHandler) ListUsers(c echo.Context, req *ListUsersRequest) ([]repository.User, error) {
	return h.auth.ListUsers(c.Request().Context())
}
