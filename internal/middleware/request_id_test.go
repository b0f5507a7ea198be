package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, incoming string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error { return nil })
	require.NoError(t, handler(c))

	return c, rec
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	c, rec := runRequestID(t, "")

	id := GetRequestID(c)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated id should be a UUID")
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	c, rec := runRequestID(t, "upstream-id-17")

	assert.Equal(t, "upstream-id-17", GetRequestID(c))
	assert.Equal(t, "upstream-id-17", rec.Header().Get(RequestIDHeader))
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}
