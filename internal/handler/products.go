package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/repository"
	"github.com/reufer-studio/marketplace-api/internal/server"
	"github.com/reufer-studio/marketplace-api/internal/service"
	"github.com/reufer-studio/marketplace-api/internal/validation"
)

// ProductHandler exposes the catalog endpoints.
type ProductHandler struct {
	Handler
	products *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(s *server.Server, products *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

// parseIDParam reads the :id path parameter as an integer identity.
// Route patterns guarantee the segment exists; a non-numeric value is
// a client error.
func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("Invalid id", true, nil, nil, nil)
	}
	return id, nil
}

// ListProductsRequest carries the optional category filter.
type ListProductsRequest struct {
	Category string `query:"category"`
}

func (r *ListProductsRequest) Validate() error { return nil }

// List returns in-stock products.
func (h *ProductHandler) List(c echo.Context, req *ListProductsRequest) ([]repository.Product, error) {
	return h.products.List(c.Request().Context(), req.Category)
}

// CreateProductRequest is the payload for adding a catalog entry.
// Input keys follow the column names; the read model's display keys
// differ.
type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Price        int     `json:"price" validate:"required,gt=0"`
	Complexity   *string `json:"complexity"`
	Formats      *string `json:"formats"`
	DeliveryTime *string `json:"delivery_time"`
	Color        *string `json:"color"`
	Description  *string `json:"description"`
	InStock      *bool   `json:"in_stock"`
}

func (r *CreateProductRequest) Validate() error { return validation.Struct(r) }

// CreateProductResponse returns the assigned identity.
type CreateProductResponse struct {
	ID int64 `json:"id"`
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c echo.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	id, err := h.products.Create(c.Request().Context(), service.CreateProductInput{
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		Complexity:   req.Complexity,
		Formats:      req.Formats,
		DeliveryTime: req.DeliveryTime,
		Color:        req.Color,
		Description:  req.Description,
		InStock:      req.InStock,
	})
	if err != nil {
		return nil, err
	}

	return &CreateProductResponse{ID: id}, nil
}

// UpdateProductRequest is the partial update payload. Every field is
// optional; unknown fields are dropped during binding.
type UpdateProductRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	Price        *int    `json:"price"`
	Complexity   *string `json:"complexity"`
	Formats      *string `json:"formats"`
	DeliveryTime *string `json:"delivery_time"`
	Color        *string `json:"color"`
	Description  *string `json:"description"`
	InStock      *bool   `json:"in_stock"`
}

func (r *UpdateProductRequest) Validate() error { return nil }

// MessageResponse is the generic confirmation body for mutations that
// return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// Update applies a partial field set to a product.
func (h *ProductHandler) Update(c echo.Context, req *UpdateProductRequest) (*MessageResponse, error) {
	id, err := parseIDParam(c)
	if err != nil {
		return nil, err
	}

	err = h.products.Update(c.Request().Context(), id, service.UpdateProductInput{
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		Complexity:   req.Complexity,
		Formats:      req.Formats,
		DeliveryTime: req.DeliveryTime,
		Color:        req.Color,
		Description:  req.Description,
		InStock:      req.InStock,
	})
	if err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Product updated"}, nil
}

// DeleteProductRequest is empty; the identity comes from the path.
type DeleteProductRequest struct{}

func (r *DeleteProductRequest) Validate() error { return nil }

// Delete takes a product off sale. The row stays.
func (h *ProductHandler) Delete(c echo.Context, req *DeleteProductRequest) (*MessageResponse, error) {
	id, err := parseIDParam(c)
	if err != nil {
		return nil, err
	}

	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Product removed from sale"}, nil
}
