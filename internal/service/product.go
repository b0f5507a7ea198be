package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/repository"
)

// Catalog defaults applied when a new product omits optional fields.
const (
	DefaultComplexity   = "Medium"
	DefaultFormats      = "STL"
	DefaultDeliveryTime = "3–5 days"
	DefaultColor        = "#C4A35A"
)

// ProductStore is the persistence surface the product service needs.
type ProductStore interface {
	List(ctx context.Context, category string) ([]repository.Product, error)
	Create(ctx context.Context, params repository.ProductParams) (int64, error)
	Update(ctx context.Context, id int64, fields []repository.FieldUpdate) error
	SoftDelete(ctx context.Context, id int64) error
}

// ProductService implements catalog rules.
type ProductService struct {
	store  ProductStore
	logger *zerolog.Logger
}

// NewProductService constructs a ProductService.
func NewProductService(store ProductStore, logger *zerolog.Logger) *ProductService {
	return &ProductService{
		store:  store,
		logger: logger,
	}
}

// isAllCategories reports whether the filter value is a sentinel
// meaning "no filter". The storefront historically sends "Все"; "all"
// is accepted for API clients.
func isAllCategories(category string) bool {
	return category == "" || category == "Все" || category == "all"
}

// List returns in-stock products, optionally filtered by category.
func (s *ProductService) List(ctx context.Context, category string) ([]repository.Product, error) {
	if isAllCategories(category) {
		category = ""
	}
	return s.store.List(ctx, category)
}

// CreateProductInput is the validated input for creating a product.
// Optional fields are pointers so absent and zero can be told apart.
type CreateProductInput struct {
	Name         string
	Category     string
	Price        int
	Complexity   *string
	Formats      *string
	DeliveryTime *string
	Color        *string
	Description  *string
	InStock      *bool
}

// Create inserts a product, filling catalog defaults for absent
// fields, and returns the new id.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (int64, error) {
	params := repository.ProductParams{
		Name:         input.Name,
		Category:     input.Category,
		Price:        input.Price,
		Complexity:   stringOr(input.Complexity, DefaultComplexity),
		Formats:      stringOr(input.Formats, DefaultFormats),
		DeliveryTime: stringOr(input.DeliveryTime, DefaultDeliveryTime),
		Color:        stringOr(input.Color, DefaultColor),
		Description:  stringOr(input.Description, ""),
		InStock:      boolOr(input.InStock, true),
	}

	return s.store.Create(ctx, params)
}

// UpdateProductInput carries the partial field set of an update. Nil
// means the field was not supplied. Fields outside this set were
// already dropped during binding.
type UpdateProductInput struct {
	Name         *string
	Category     *string
	Price        *int
	Complexity   *string
	Formats      *string
	DeliveryTime *string
	Color        *string
	Description  *string
	InStock      *bool
}

// Update applies the supplied fields in one statement. Supplying no
// recognized field at all is a validation error and performs no
// mutation.
func (s *ProductService) Update(ctx context.Context, id int64, input UpdateProductInput) error {
	fields := []repository.FieldUpdate{}

	appendField := func(column string, present bool, value any) {
		if present {
			fields = append(fields, repository.FieldUpdate{Column: column, Value: value})
		}
	}

	appendField("name", input.Name != nil, deref(input.Name))
	appendField("category", input.Category != nil, deref(input.Category))
	appendField("price", input.Price != nil, deref(input.Price))
	appendField("complexity", input.Complexity != nil, deref(input.Complexity))
	appendField("formats", input.Formats != nil, deref(input.Formats))
	appendField("delivery_time", input.DeliveryTime != nil, deref(input.DeliveryTime))
	appendField("color", input.Color != nil, deref(input.Color))
	appendField("description", input.Description != nil, deref(input.Description))
	appendField("in_stock", input.InStock != nil, deref(input.InStock))

	if len(fields) == 0 {
		return errs.NewBadRequestError("No fields to update", true, nil, nil, nil)
	}

	return s.store.Update(ctx, id, fields)
}

// Delete marks a product out of stock. Rows are never removed.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.store.SoftDelete(ctx, id)
}

func stringOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
