package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository persists user accounts.
type UserRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(pool *pgxpool.Pool, schema string) *UserRepository {
	return &UserRepository{
		pool:  pool,
		table: schema + ".users",
	}
}

// FindCredentialsByEmail returns the stored credentials for a user, or
// a "table:users:" annotated no-rows error so sqlerr can name the
// entity. email must already be normalized.
func (r *UserRepository) FindCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error) {
	query := fmt.Sprintf("SELECT id, name, email, role, password_hash FROM %s WHERE email = $1", r.table)

	var creds UserCredentials
	err := r.pool.QueryRow(ctx, query, email).Scan(&creds.ID, &creds.Name, &creds.Email, &creds.Role, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:users: %w", pgx.ErrNoRows)
		}
		return nil, err
	}

	return &creds, nil
}

// EmailExists reports whether a user with the normalized email exists.
// This is the friendly pre-check; the unique constraint on users.email
// is what actually closes the race.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE email = $1)", r.table)

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// Create inserts a user with the client role and returns the new id.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (name, email, password_hash, role)
		VALUES ($1, $2, $3, 'client') RETURNING id`, r.table)

	var id int64
	if err := r.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// List returns all users ordered by id. The credential column is never
// selected here.
func (r *UserRepository) List(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf("SELECT id, name, email, role, phone, city, company, created_at FROM %s ORDER BY id", r.table)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Phone, &u.City, &u.Company, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
