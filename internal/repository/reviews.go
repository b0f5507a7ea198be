package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReviewRepository persists customer reviews.
type ReviewRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewReviewRepository constructs a ReviewRepository.
func NewReviewRepository(pool *pgxpool.Pool, schema string) *ReviewRepository {
	return &ReviewRepository{
		pool:  pool,
		table: schema + ".reviews",
	}
}

// ReviewParams are the columns written on insert. Status is not among
// them: new reviews always start pending.
type ReviewParams struct {
	AuthorName  string
	City        string
	Rating      int
	Text        string
	ProductName string
	UserID      *int64
}

// List returns reviews newest first, optionally filtered by moderation
// status. An empty status means no filter.
func (r *ReviewRepository) List(ctx context.Context, status string) ([]Review, error) {
	query := fmt.Sprintf(`SELECT id, author_name, city, rating, text, product_name, status, helpful_count, created_at
		FROM %s`, r.table)
	args := []any{}

	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.AuthorName, &rv.City, &rv.Rating, &rv.Text,
			&rv.ProductName, &rv.Status, &rv.HelpfulCount, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}

// Create inserts a review in pending status and returns the new id.
func (r *ReviewRepository) Create(ctx context.Context, params ReviewParams) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (author_name, city, rating, text, product_name, user_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending') RETURNING id`, r.table)

	var id int64
	err := r.pool.QueryRow(ctx, query,
		params.AuthorName, params.City, params.Rating, params.Text, params.ProductName, params.UserID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateStatus sets the moderation status. The status value is
// validated by the service before it gets here; the CHECK constraint
// is the backstop.
func (r *ReviewRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := fmt.Sprintf("UPDATE %s SET status = $1 WHERE id = $2", r.table)
	_, err := r.pool.Exec(ctx, query, status, id)
	return err
}
