package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/repository"
)

type fakeUserStore struct {
	creds     *repository.UserCredentials
	credsErr  error
	exists    bool
	created   []string
	createErr error
	lookups   []string
	users     []repository.User
}

func (f *fakeUserStore) FindCredentialsByEmail(ctx context.Context, email string) (*repository.UserCredentials, error) {
	f.lookups = append(f.lookups, email)
	if f.credsErr != nil {
		return nil, f.credsErr
	}
	return f.creds, nil
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.exists, nil
}

func (f *fakeUserStore) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, email)
	return 42, nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]repository.User, error) {
	return f.users, nil
}

func newAuthService(store *fakeUserStore, enq *fakeEnqueuer) *AuthService {
	logger := zerolog.Nop()
	// MinCost keeps hashing fast in tests.
	return NewAuthService(store, enq, &logger, bcrypt.MinCost)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginNormalizesEmail(t *testing.T) {
	store := &fakeUserStore{
		creds: &repository.UserCredentials{
			ID: 1, Name: "Мария", Email: "maria@example.com", Role: "client",
			PasswordHash: hashOf(t, "secret"),
		},
	}
	svc := newAuthService(store, &fakeEnqueuer{})

	result, err := svc.Login(context.Background(), "  Maria@Example.COM ", "secret")
	require.NoError(t, err)

	assert.Equal(t, []string{"maria@example.com"}, store.lookups)
	assert.Equal(t, "client", result.Role)
	assert.Equal(t, int64(1), result.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	unknownStore := &fakeUserStore{
		credsErr: fmt.Errorf("table:users: %w", pgx.ErrNoRows),
	}
	wrongPasswordStore := &fakeUserStore{
		creds: &repository.UserCredentials{
			ID: 1, Email: "maria@example.com", PasswordHash: hashOf(t, "secret"),
		},
	}

	svc1 := newAuthService(unknownStore, &fakeEnqueuer{})
	_, err1 := svc1.Login(context.Background(), "nobody@example.com", "secret")

	svc2 := newAuthService(wrongPasswordStore, &fakeEnqueuer{})
	_, err2 := svc2.Login(context.Background(), "maria@example.com", "wrong")

	var httpErr1, httpErr2 *errs.HTTPError
	require.ErrorAs(t, err1, &httpErr1)
	require.ErrorAs(t, err2, &httpErr2)

	assert.Equal(t, 401, httpErr1.Status)
	assert.Equal(t, 401, httpErr2.Status)
	assert.Equal(t, httpErr1.Message, httpErr2.Message, "the two failure modes must not be distinguishable")
}

func TestRegisterHashesAndNormalizes(t *testing.T) {
	store := &fakeUserStore{}
	enq := &fakeEnqueuer{}
	svc := newAuthService(store, enq)

	result, err := svc.Register(context.Background(), " Мария ", " Maria@Example.COM", "secret")
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.ID)
	assert.Equal(t, "Мария", result.Name)
	assert.Equal(t, "maria@example.com", result.Email)
	assert.Equal(t, "client", result.Role)
	assert.Equal(t, []string{"maria@example.com"}, store.created)
	assert.Equal(t, []string{"maria@example.com"}, enq.welcomes)
}

func TestRegisterRejectsExistingEmail(t *testing.T) {
	store := &fakeUserStore{exists: true}
	svc := newAuthService(store, &fakeEnqueuer{})

	_, err := svc.Register(context.Background(), "Мария", "maria@example.com", "secret")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Empty(t, store.created)
}

func TestRegisterTreatsConstraintRaceAsExistingEmail(t *testing.T) {
	// The pre-check passed but a concurrent registration won the insert.
	store := &fakeUserStore{
		createErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
	}
	svc := newAuthService(store, &fakeEnqueuer{})

	_, err := svc.Register(context.Background(), "Мария", "maria@example.com", "secret")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
}

func TestRegisterSucceedsWhenWelcomeEnqueueFails(t *testing.T) {
	store := &fakeUserStore{}
	svc := newAuthService(store, &fakeEnqueuer{err: assert.AnError})

	result, err := svc.Register(context.Background(), "Мария", "maria@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.ID)
}

func TestListUsers(t *testing.T) {
	store := &fakeUserStore{users: []repository.User{{ID: 1, Name: "Мария"}}}
	svc := newAuthService(store, &fakeEnqueuer{})

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Мария", users[0].Name)
}
