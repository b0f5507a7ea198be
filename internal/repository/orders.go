package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository persists orders and their items.
type OrderRepository struct {
	pool       *pgxpool.Pool
	table      string
	itemsTable string
}

// NewOrderRepository constructs an OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool, schema string) *OrderRepository {
	return &OrderRepository{
		pool:       pool,
		table:      schema + ".orders",
		itemsTable: schema + ".order_items",
	}
}

// OrderParams are the columns written when an order is created.
type OrderParams struct {
	OrderNumber     string
	UserID          *int64
	DeliveryService string
	DeliveryPrice   int
	Subtotal        int
	Total           int
	ClientName      string
	ClientEmail     string
	PromoDiscount   int
}

// OrderItemParams is one line of a new order.
type OrderItemParams struct {
	ProductID *int64
	Name      string
	Qty       int
	Price     int
}

// listLimit caps unfiltered order listings at the most recent rows.
const listLimit = 100

// List returns orders newest first, optionally filtered by owning
// user. Unfiltered listings are capped at 100 rows. Items are loaded
// with one extra query per order; at storefront volumes the N+1 shape
// costs less than it would to maintain a join that reshapes rows.
func (r *OrderRepository) List(ctx context.Context, userID *int64) ([]Order, error) {
	query := fmt.Sprintf(`SELECT id, order_number, status, delivery_service, total, client_name, tracking_number, created_at
		FROM %s`, r.table)
	args := []any{}

	if userID != nil {
		query += " WHERE user_id = $1 ORDER BY created_at DESC"
		args = append(args, *userID)
	} else {
		query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", listLimit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.Status, &o.DeliveryService, &o.Total,
			&o.ClientName, &o.TrackingNumber, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *OrderRepository) listItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	query := fmt.Sprintf("SELECT product_name, quantity, price FROM %s WHERE order_id = $1", r.itemsTable)

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.Name, &it.Qty, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// Create inserts the order row and all item rows in one transaction,
// so a failure on any item leaves no partial order behind. Returns the
// assigned order id.
func (r *OrderRepository) Create(ctx context.Context, params OrderParams, items []OrderItemParams) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	orderQuery := fmt.Sprintf(`INSERT INTO %s (order_number, user_id, status, delivery_service, delivery_price, subtotal, total, client_name, client_email, promo_discount)
		VALUES ($1, $2, 'pending', $3, $4, $5, $6, $7, $8, $9) RETURNING id`, r.table)

	var orderID int64
	err = tx.QueryRow(ctx, orderQuery,
		params.OrderNumber, params.UserID, params.DeliveryService, params.DeliveryPrice,
		params.Subtotal, params.Total, params.ClientName, params.ClientEmail, params.PromoDiscount,
	).Scan(&orderID)
	if err != nil {
		return 0, err
	}

	itemQuery := fmt.Sprintf(`INSERT INTO %s (order_id, product_id, product_name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`, r.itemsTable)

	for _, item := range items {
		if _, err := tx.Exec(ctx, itemQuery, orderID, item.ProductID, item.Name, item.Qty, item.Price); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}

// Update changes status and/or tracking number. updated_at is stamped
// on every call, even when neither field is present; callers rely on
// that to mark an order as touched.
func (r *OrderRepository) Update(ctx context.Context, id int64, status, trackingNumber *string) error {
	assignments := []string{}
	args := []any{}

	if status != nil {
		args = append(args, *status)
		assignments = append(assignments, fmt.Sprintf("status = $%d", len(args)))
	}
	if trackingNumber != nil {
		args = append(args, *trackingNumber)
		assignments = append(assignments, fmt.Sprintf("tracking_number = $%d", len(args)))
	}
	assignments = append(assignments, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		r.table, strings.Join(assignments, ", "), len(args))

	_, err := r.pool.Exec(ctx, query, args...)
	return err
}
