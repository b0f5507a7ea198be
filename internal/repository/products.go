package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepository persists catalog products.
type ProductRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewProductRepository constructs a ProductRepository. schema is the
// trusted, configuration-time schema qualifier.
func NewProductRepository(pool *pgxpool.Pool, schema string) *ProductRepository {
	return &ProductRepository{
		pool:  pool,
		table: schema + ".products",
	}
}

// ProductParams are the columns written on insert. Defaults are filled
// by the service before they get here.
type ProductParams struct {
	Name         string
	Category     string
	Price        int
	Complexity   string
	Formats      string
	DeliveryTime string
	Color        string
	Description  string
	InStock      bool
}

// FieldUpdate is one column assignment of a partial update. Column
// names only ever come from the service's fixed allow-list.
type FieldUpdate struct {
	Column string
	Value  any
}

// List returns in-stock products ordered by id, optionally filtered by
// category. An empty category means no filter.
func (r *ProductRepository) List(ctx context.Context, category string) ([]Product, error) {
	query := fmt.Sprintf(`SELECT id, name, category, price, complexity, formats, delivery_time, color, in_stock, rating, reviews_count
		FROM %s WHERE in_stock = TRUE`, r.table)
	args := []any{}

	if category != "" {
		query += " AND category = $1"
		args = append(args, category)
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Complexity, &p.Formats,
			&p.DeliveryTime, &p.Color, &p.InStock, &p.Rating, &p.ReviewsCount); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Create inserts a product and returns the assigned id.
func (r *ProductRepository) Create(ctx context.Context, params ProductParams) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (name, category, price, complexity, formats, delivery_time, color, description, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`, r.table)

	var id int64
	err := r.pool.QueryRow(ctx, query,
		params.Name, params.Category, params.Price, params.Complexity, params.Formats,
		params.DeliveryTime, params.Color, params.Description, params.InStock,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update applies the given column assignments in a single statement.
func (r *ProductRepository) Update(ctx context.Context, id int64, fields []FieldUpdate) error {
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update on %s", r.table)
	}

	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, f.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		r.table, strings.Join(assignments, ", "), len(args))

	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

// SoftDelete marks a product out of stock. The row is never removed:
// flipping in_stock is the only supported deletion mechanism.
func (r *ProductRepository) SoftDelete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("UPDATE %s SET in_stock = FALSE WHERE id = $1", r.table)
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
