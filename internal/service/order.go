package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/repository"
	"github.com/reufer-studio/marketplace-api/internal/sqlerr"
)

const (
	orderNumberPrefix     = "РС-"
	orderNumberTimeLayout = "060102150405"
	orderNumberConstraint = "orders_order_number_key"
	orderNumberMaxRetries = 3

	DefaultDeliveryService = "СДЭК"
)

// OrderStore is the persistence surface the order service needs.
type OrderStore interface {
	List(ctx context.Context, userID *int64) ([]repository.Order, error)
	Create(ctx context.Context, params repository.OrderParams, items []repository.OrderItemParams) (int64, error)
	Update(ctx context.Context, id int64, status, trackingNumber *string) error
}

// OrderEnqueuer schedules background work after an order is placed.
type OrderEnqueuer interface {
	EnqueueOrderConfirmation(to, clientName, orderNumber string) error
}

// OrderService implements order placement and management.
type OrderService struct {
	store    OrderStore
	enqueuer OrderEnqueuer
	logger   *zerolog.Logger

	// now is swappable so order numbers are deterministic in tests.
	now func() time.Time
}

// NewOrderService constructs an OrderService.
func NewOrderService(store OrderStore, enqueuer OrderEnqueuer, logger *zerolog.Logger) *OrderService {
	return &OrderService{
		store:    store,
		enqueuer: enqueuer,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns orders newest first, optionally scoped to one user.
// Unscoped listings are capped by the repository.
func (s *OrderService) List(ctx context.Context, userID *int64) ([]repository.Order, error) {
	return s.store.List(ctx, userID)
}

// OrderItemInput is one line item of a new order.
type OrderItemInput struct {
	ProductID *int64
	Name      string
	Qty       int
	Price     int
}

// CreateOrderInput is the validated input for placing an order.
type CreateOrderInput struct {
	UserID          *int64
	ClientName      string
	ClientEmail     string
	DeliveryService string
	DeliveryPrice   int
	Subtotal        int
	Total           int
	PromoDiscount   int
	Items           []OrderItemInput
}

// CreateOrderResult is returned to the client after placement.
type CreateOrderResult struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"order_number"`
}

// orderNumber derives the human-facing order number from a timestamp.
func orderNumber(t time.Time) string {
	return orderNumberPrefix + t.Format(orderNumberTimeLayout)
}

// Create places an order. The order number is derived from the
// current second; when two orders land in the same second the unique
// constraint rejects the duplicate and the number is advanced by one
// second and retried, up to orderNumberMaxRetries attempts.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	if len(input.Items) == 0 {
		return nil, errs.NewBadRequestError("Order must contain at least one item", true, nil, nil, nil)
	}

	items := make([]repository.OrderItemParams, 0, len(input.Items))
	for _, item := range input.Items {
		qty := item.Qty
		if qty <= 0 {
			qty = 1
		}
		items = append(items, repository.OrderItemParams{
			ProductID: item.ProductID,
			Name:      item.Name,
			Qty:       qty,
			Price:     item.Price,
		})
	}

	delivery := input.DeliveryService
	if delivery == "" {
		delivery = DefaultDeliveryService
	}

	params := repository.OrderParams{
		UserID:          input.UserID,
		DeliveryService: delivery,
		DeliveryPrice:   input.DeliveryPrice,
		Subtotal:        input.Subtotal,
		Total:           input.Total,
		ClientName:      input.ClientName,
		ClientEmail:     input.ClientEmail,
		PromoDiscount:   input.PromoDiscount,
	}

	stamp := s.now()
	var id int64
	var err error
	for attempt := 0; attempt < orderNumberMaxRetries; attempt++ {
		params.OrderNumber = orderNumber(stamp)
		id, err = s.store.Create(ctx, params, items)
		if err == nil {
			break
		}
		if !sqlerr.IsUniqueViolation(err, orderNumberConstraint) {
			return nil, err
		}
		stamp = stamp.Add(time.Second)
	}
	if err != nil {
		return nil, err
	}

	if input.ClientEmail != "" && s.enqueuer != nil {
		if err := s.enqueuer.EnqueueOrderConfirmation(input.ClientEmail, input.ClientName, params.OrderNumber); err != nil {
			s.logger.Warn().Err(err).
				Str("order_number", params.OrderNumber).
				Msg("failed to enqueue order confirmation email")
		}
	}

	return &CreateOrderResult{
		ID:          id,
		OrderNumber: params.OrderNumber,
	}, nil
}

// UpdateOrderInput carries the updatable order fields. Nil means the
// field was not supplied.
type UpdateOrderInput struct {
	Status         *string
	TrackingNumber *string
}

// Update changes an order's status and/or tracking number.
func (s *OrderService) Update(ctx context.Context, id int64, input UpdateOrderInput) error {
	return s.store.Update(ctx, id, input.Status, input.TrackingNumber)
}
