package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/reufer-studio/marketplace-api/internal/repository"
	"github.com/reufer-studio/marketplace-api/internal/server"
	"github.com/reufer-studio/marketplace-api/internal/service"
	"github.com/reufer-studio/marketplace-api/internal/validation"
)

// OrderHandler exposes the order endpoints.
type OrderHandler struct {
	Handler
	orders *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

// ListOrdersRequest carries the optional owning-user filter.
type ListOrdersRequest struct {
	UserID *int64 `query:"user_id"`
}

func (r *ListOrdersRequest) Validate() error { return nil }

// List returns orders, newest first.
func (h *OrderHandler) List(c echo.Context, req *ListOrdersRequest) ([]repository.Order, error) {
	return h.orders.List(c.Request().Context(), req.UserID)
}

// OrderItemRequest is one cart line in a checkout payload.
type OrderItemRequest struct {
	ProductID *int64 `json:"product_id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	Price     int    `json:"price"`
}

// CreateOrderRequest is the checkout payload. The item list is checked
// by the service so an empty cart gets its dedicated message.
type CreateOrderRequest struct {
	UserID          *int64             `json:"user_id"`
	ClientName      string             `json:"client_name"`
	ClientEmail     string             `json:"client_email" validate:"omitempty,email"`
	DeliveryService string             `json:"delivery_service"`
	DeliveryPrice   int                `json:"delivery_price"`
	Subtotal        int                `json:"subtotal"`
	Total           int                `json:"total"`
	PromoDiscount   int                `json:"promo_discount"`
	Items           []OrderItemRequest `json:"items"`
}

func (r *CreateOrderRequest) Validate() error { return validation.Struct(r) }

// Create places an order.
func (h *OrderHandler) Create(c echo.Context, req *CreateOrderRequest) (*service.CreateOrderResult, error) {
	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Qty:       item.Qty,
			Price:     item.Price,
		})
	}

	return h.orders.Create(c.Request().Context(), service.CreateOrderInput{
		UserID:          req.UserID,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		DeliveryService: req.DeliveryService,
		DeliveryPrice:   req.DeliveryPrice,
		Subtotal:        req.Subtotal,
		Total:           req.Total,
		PromoDiscount:   req.PromoDiscount,
		Items:           items,
	})
}

// UpdateOrderRequest changes status and/or tracking number. Sending
// neither still stamps updated_at; callers use that to mark an order
// touched.
type UpdateOrderRequest struct {
	Status         *string `json:"status"`
	TrackingNumber *string `json:"tracking_number"`
}

func (r *UpdateOrderRequest) Validate() error { return nil }

// Update changes an order's status or tracking number.
func (h *OrderHandler) Update(c echo.Context, req *UpdateOrderRequest) (*MessageResponse, error) {
	id, err := parseIDParam(c)
	if err != nil {
		return nil, err
	}

	err = h.orders.Update(c.Request().Context(), id, service.UpdateOrderInput{
		Status:         req.Status,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Order updated"}, nil
}
