package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reufer-studio/marketplace-api/internal/server"
)

func runExtractIdentity(t *testing.T, headerValue string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if headerValue != "" {
		req.Header.Set(HeaderUserID, headerValue)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	nop := zerolog.Nop()
	im := NewIdentityMiddleware(&server.Server{Logger: &nop})

	handler := im.ExtractIdentity()(func(c echo.Context) error { return nil })
	require.NoError(t, handler(c))

	return c
}

func TestExtractIdentityStoresNumericID(t *testing.T) {
	c := runExtractIdentity(t, "17")
	assert.Equal(t, "17", GetUserID(c))
}

func TestExtractIdentityDropsMalformedID(t *testing.T) {
	c := runExtractIdentity(t, "seventeen")
	assert.Empty(t, GetUserID(c))
}

func TestExtractIdentityNoHeader(t *testing.T) {
	c := runExtractIdentity(t, "")
	assert.Empty(t, GetUserID(c))
}
