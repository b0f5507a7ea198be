package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reufer-studio/marketplace-api/internal/errs"
)

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		want    int64
		wantErr bool
	}{
		{"numeric id", "42", 42, false},
		{"zero", "0", 0, false},
		{"non-numeric", "abc", 0, true},
		{"embedded separator", "1/2", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/", nil)
			c := echo.New().NewContext(req, httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			got, err := parseIDParam(c)
			if tt.wantErr {
				var httpErr *errs.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, 400, httpErr.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateProductRequestValidation(t *testing.T) {
	valid := &CreateProductRequest{Name: "Ваза", Category: "Вазы", Price: 2500}
	assert.NoError(t, valid.Validate())

	missingName := &CreateProductRequest{Category: "Вазы", Price: 2500}
	assert.Error(t, missingName.Validate())

	zeroPrice := &CreateProductRequest{Name: "Ваза", Category: "Вазы"}
	assert.Error(t, zeroPrice.Validate(), "a zero price is not a valid price")
}

func TestLoginRequestValidation(t *testing.T) {
	valid := &LoginRequest{Email: "maria@example.com", Password: "secret"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&LoginRequest{Email: "maria@example.com"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "secret"}).Validate())
}

func TestRegisterRequestValidation(t *testing.T) {
	valid := &RegisterRequest{Name: "Мария", Email: "maria@example.com", Password: "secret"}
	assert.NoError(t, valid.Validate())

	badEmail := &RegisterRequest{Name: "Мария", Email: "not-an-email", Password: "secret"}
	assert.Error(t, badEmail.Validate())
}

func TestCreateOrderRequestValidation(t *testing.T) {
	valid := &CreateOrderRequest{
		Total: 1000,
		Items: []OrderItemRequest{{Name: "Vase", Qty: 1, Price: 1000}},
	}
	assert.NoError(t, valid.Validate())

	// The email is optional, but when present it must parse.
	withEmail := &CreateOrderRequest{ClientEmail: "maria@example.com"}
	assert.NoError(t, withEmail.Validate())

	badEmail := &CreateOrderRequest{ClientEmail: "nope"}
	assert.Error(t, badEmail.Validate())
}
