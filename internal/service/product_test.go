package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reufer-studio/marketplace-api/internal/errs"
	"github.com/reufer-studio/marketplace-api/internal/repository"
)

type fakeProductStore struct {
	listCategories []string
	created        []repository.ProductParams
	updated        map[int64][]repository.FieldUpdate
	softDeleted    []int64
}

func (f *fakeProductStore) List(ctx context.Context, category string) ([]repository.Product, error) {
	f.listCategories = append(f.listCategories, category)
	return nil, nil
}

func (f *fakeProductStore) Create(ctx context.Context, params repository.ProductParams) (int64, error) {
	f.created = append(f.created, params)
	return int64(len(f.created)), nil
}

func (f *fakeProductStore) Update(ctx context.Context, id int64, fields []repository.FieldUpdate) error {
	if f.updated == nil {
		f.updated = map[int64][]repository.FieldUpdate{}
	}
	f.updated[id] = fields
	return nil
}

func (f *fakeProductStore) SoftDelete(ctx context.Context, id int64) error {
	f.softDeleted = append(f.softDeleted, id)
	return nil
}

func newProductService(store *fakeProductStore) *ProductService {
	logger := zerolog.Nop()
	return NewProductService(store, &logger)
}

func TestProductListCategorySentinels(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"empty is no filter", "", ""},
		{"cyrillic sentinel", "Все", ""},
		{"latin sentinel", "all", ""},
		{"real category passes through", "Вазы", "Вазы"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeProductStore{}
			svc := newProductService(store)

			_, err := svc.List(context.Background(), tt.category)
			require.NoError(t, err)
			require.Len(t, store.listCategories, 1)
			assert.Equal(t, tt.want, store.listCategories[0])
		})
	}
}

func TestProductCreateAppliesDefaults(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	id, err := svc.Create(context.Background(), CreateProductInput{
		Name:     "Ваза",
		Category: "Вазы",
		Price:    2500,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, store.created, 1)
	got := store.created[0]
	assert.Equal(t, DefaultComplexity, got.Complexity)
	assert.Equal(t, DefaultFormats, got.Formats)
	assert.Equal(t, DefaultDeliveryTime, got.DeliveryTime)
	assert.Equal(t, DefaultColor, got.Color)
	assert.Empty(t, got.Description)
	assert.True(t, got.InStock)
}

func TestProductCreateKeepsExplicitValues(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	complexity := "High"
	inStock := false

	_, err := svc.Create(context.Background(), CreateProductInput{
		Name:       "Ваза",
		Category:   "Вазы",
		Price:      2500,
		Complexity: &complexity,
		InStock:    &inStock,
	})
	require.NoError(t, err)

	got := store.created[0]
	assert.Equal(t, "High", got.Complexity)
	assert.False(t, got.InStock)
}

func TestProductUpdateRejectsEmptyFieldSet(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	err := svc.Update(context.Background(), 1, UpdateProductInput{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Empty(t, store.updated, "no mutation on an empty field set")
}

func TestProductUpdateAppliesOnlySuppliedFields(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	price := 3000
	inStock := true

	err := svc.Update(context.Background(), 5, UpdateProductInput{
		Price:   &price,
		InStock: &inStock,
	})
	require.NoError(t, err)

	fields := store.updated[5]
	require.Len(t, fields, 2)
	assert.Equal(t, "price", fields[0].Column)
	assert.Equal(t, 3000, fields[0].Value)
	assert.Equal(t, "in_stock", fields[1].Column)
	assert.Equal(t, true, fields[1].Value)
}

func TestProductDeleteIsSoft(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, []int64{9}, store.softDeleted)
}
