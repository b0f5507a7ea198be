package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/repository"
	"github.com/reufer-studio/marketplace-api/internal/sqlerr"
)

const emailConstraint = "users_email_key"

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	FindCredentialsByEmail(ctx context.Context, email string) (*repository.UserCredentials, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, name, email, passwordHash string) (int64, error)
	List(ctx context.Context) ([]repository.User, error)
}

// AuthEnqueuer schedules background work after registration.
type AuthEnqueuer interface {
	EnqueueWelcomeEmail(to, name string) error
}

// AuthService implements login, registration, and user listing.
type AuthService struct {
	store      UserStore
	enqueuer   AuthEnqueuer
	logger     *zerolog.Logger
	bcryptCost int
}

// NewAuthService constructs an AuthService. cost <= 0 falls back to
// the bcrypt default.
func NewAuthService(store UserStore, enqueuer AuthEnqueuer, logger *zerolog.Logger, cost int) *AuthService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		store:      store,
		enqueuer:   enqueuer,
		logger:     logger,
		bcryptCost: cost,
	}
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthResult is the identity payload returned on login and
// registration. There is no session or token; the caller keeps it.
type AuthResult struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// invalidCredentials is shared by the unknown-email and wrong-password
// paths so responses do not reveal which one failed.
func invalidCredentials() error {
	return errs.NewUnauthorizedError("Invalid email or password", true)
}

// Login verifies the email/password pair against the stored bcrypt
// hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	creds, err := s.store.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if sqlerr.IsNoRows(err) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}

	return &AuthResult{
		ID:    creds.ID,
		Name:  creds.Name,
		Email: creds.Email,
		Role:  creds.Role,
	}, nil
}

// Register creates a user account with the client role. The existence
// pre-check gives a friendly error on the common path; the unique
// constraint on email closes the race, and a constraint violation is
// reported the same way as the pre-check.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	exists, err := s.store.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, emailTakenError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	id, err := s.store.Create(ctx, name, email, string(hash))
	if err != nil {
		if sqlerr.IsUniqueViolation(err, emailConstraint) {
			return nil, emailTakenError()
		}
		return nil, err
	}

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueWelcomeEmail(email, name); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to enqueue welcome email")
		}
	}

	return &AuthResult{
		ID:    id,
		Name:  name,
		Email: email,
		Role:  "client",
	}, nil
}

func emailTakenError() error {
	return errs.NewBadRequestError("A user with this email already exists", true, nil, nil, nil)
}

// ListUsers returns every profile, credentials excluded.
func (s *AuthService) ListUsers(ctx context.Context) ([]repository.User, error) {
	return s.store.List(ctx)
}
