package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/repository"
)

type fakeOrderStore struct {
	created    []repository.OrderParams
	items      [][]repository.OrderItemParams
	createErrs []error
	nextID     int64
	listCalls  []*int64
	updates    []struct{ status, tracking *string }
	updateErr  error
	listResult []repository.Order
	listErr    error
}

func (f *fakeOrderStore) List(ctx context.Context, userID *int64) ([]repository.Order, error) {
	f.listCalls = append(f.listCalls, userID)
	return f.listResult, f.listErr
}

func (f *fakeOrderStore) Create(ctx context.Context, params repository.OrderParams, items []repository.OrderItemParams) (int64, error) {
	f.created = append(f.created, params)
	f.items = append(f.items, items)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return 0, err
		}
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeOrderStore) Update(ctx context.Context, id int64, status, trackingNumber *string) error {
	f.updates = append(f.updates, struct{ status, tracking *string }{status, trackingNumber})
	return f.updateErr
}

type fakeEnqueuer struct {
	confirmations []string
	welcomes      []string
	err           error
}

func (f *fakeEnqueuer) EnqueueOrderConfirmation(to, clientName, orderNumber string) error {
	f.confirmations = append(f.confirmations, to)
	return f.err
}

func (f *fakeEnqueuer) EnqueueWelcomeEmail(to, name string) error {
	f.welcomes = append(f.welcomes, to)
	return f.err
}

func newOrderService(store *fakeOrderStore, enq *fakeEnqueuer) *OrderService {
	logger := zerolog.Nop()
	svc := NewOrderService(store, enq, &logger)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	}
	return svc
}

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		ClientName: "Мария",
		Subtotal:   1000,
		Total:      1000,
		Items: []OrderItemInput{
			{Name: "Vase", Qty: 2, Price: 500},
		},
	}
}

func TestOrderCreateRejectsEmptyCart(t *testing.T) {
	store := &fakeOrderStore{}
	svc := newOrderService(store, &fakeEnqueuer{})

	input := validOrderInput()
	input.Items = nil

	_, err := svc.Create(context.Background(), input)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Empty(t, store.created, "no rows should be written for an empty cart")
}

func TestOrderCreateGeneratesTimestampNumber(t *testing.T) {
	store := &fakeOrderStore{}
	svc := newOrderService(store, &fakeEnqueuer{})

	result, err := svc.Create(context.Background(), validOrderInput())
	require.NoError(t, err)

	assert.Equal(t, "РС-260314150926", result.OrderNumber)
	assert.Regexp(t, regexp.MustCompile(`^РС-\d{12}$`), result.OrderNumber)
	assert.Equal(t, int64(1), result.ID)
}

func TestOrderCreateDefaults(t *testing.T) {
	store := &fakeOrderStore{}
	svc := newOrderService(store, &fakeEnqueuer{})

	input := validOrderInput()
	input.Items = []OrderItemInput{{Name: "Vase", Price: 500}}

	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	assert.Equal(t, DefaultDeliveryService, store.created[0].DeliveryService)

	require.Len(t, store.items, 1)
	require.Len(t, store.items[0], 1)
	assert.Equal(t, 1, store.items[0][0].Qty, "missing quantity defaults to 1")
}

func TestOrderCreateRetriesOnNumberCollision(t *testing.T) {
	collision := &pgconn.PgError{Code: "23505", ConstraintName: "orders_order_number_key"}
	store := &fakeOrderStore{createErrs: []error{collision}}
	svc := newOrderService(store, &fakeEnqueuer{})

	result, err := svc.Create(context.Background(), validOrderInput())
	require.NoError(t, err)

	require.Len(t, store.created, 2)
	assert.Equal(t, "РС-260314150926", store.created[0].OrderNumber)
	assert.Equal(t, "РС-260314150927", store.created[1].OrderNumber, "retry advances the timestamp a second")
	assert.Equal(t, "РС-260314150927", result.OrderNumber)
}

func TestOrderCreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	collision := &pgconn.PgError{Code: "23505", ConstraintName: "orders_order_number_key"}
	store := &fakeOrderStore{createErrs: []error{collision, collision, collision}}
	svc := newOrderService(store, &fakeEnqueuer{})

	_, err := svc.Create(context.Background(), validOrderInput())
	require.Error(t, err)
	assert.Len(t, store.created, 3)
}

func TestOrderCreateDoesNotRetryOtherErrors(t *testing.T) {
	fkViolation := &pgconn.PgError{Code: "23503", ConstraintName: "order_items_order_id_fkey"}
	store := &fakeOrderStore{createErrs: []error{fkViolation}}
	svc := newOrderService(store, &fakeEnqueuer{})

	_, err := svc.Create(context.Background(), validOrderInput())
	require.Error(t, err)
	assert.Len(t, store.created, 1)
}

func TestOrderCreateEnqueuesConfirmation(t *testing.T) {
	store := &fakeOrderStore{}
	enq := &fakeEnqueuer{}
	svc := newOrderService(store, enq)

	input := validOrderInput()
	input.ClientEmail = "maria@example.com"

	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{"maria@example.com"}, enq.confirmations)
}

func TestOrderCreateSkipsConfirmationWithoutEmail(t *testing.T) {
	store := &fakeOrderStore{}
	enq := &fakeEnqueuer{}
	svc := newOrderService(store, enq)

	_, err := svc.Create(context.Background(), validOrderInput())
	require.NoError(t, err)
	assert.Empty(t, enq.confirmations)
}

func TestOrderCreateSucceedsWhenEnqueueFails(t *testing.T) {
	store := &fakeOrderStore{}
	enq := &fakeEnqueuer{err: assert.AnError}
	svc := newOrderService(store, enq)

	input := validOrderInput()
	input.ClientEmail = "maria@example.com"

	result, err := svc.Create(context.Background(), input)
	require.NoError(t, err, "a broken queue must not lose the order")
	assert.NotZero(t, result.ID)
}

func TestOrderUpdatePassesTimestampOnlyUpdate(t *testing.T) {
	store := &fakeOrderStore{}
	svc := newOrderService(store, &fakeEnqueuer{})

	err := svc.Update(context.Background(), 7, UpdateOrderInput{})
	require.NoError(t, err)

	require.Len(t, store.updates, 1)
	assert.Nil(t, store.updates[0].status)
	assert.Nil(t, store.updates[0].tracking)
}
