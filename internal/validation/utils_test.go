package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reufer-studio/marketplace-api/internal/errs"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (p *loginPayload) Validate() error { return Struct(p) }

type openPayload struct {
	Note string `json:"note"`
}

func (p *openPayload) Validate() error { return nil }

func newTestContext(t *testing.T, body string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

func TestBindAndValidateBindsValidPayload(t *testing.T) {
	c := newTestContext(t, `{"email":"maria@example.com","password":"secret"}`)

	payload := &loginPayload{}
	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, "maria@example.com", payload.Email)
	assert.Equal(t, "secret", payload.Password)
}

func TestBindAndValidateReportsMissingFields(t *testing.T) {
	c := newTestContext(t, `{"email":"maria@example.com"}`)

	err := BindAndValidate(c, &loginPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "password", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestBindAndValidateToleratesMalformedJSON(t *testing.T) {
	// A broken body leaves the payload at its zero value; whether that
	// is an error is the payload's call, not the codec's.
	c := newTestContext(t, `{not json`)

	payload := &openPayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Empty(t, payload.Note)
}

func TestBindAndValidateMalformedJSONStillValidates(t *testing.T) {
	c := newTestContext(t, `{not json`)

	err := BindAndValidate(c, &loginPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Len(t, httpErr.Errors, 2, "both required fields missing")
}

func TestBindAndValidateEmptyBody(t *testing.T) {
	c := newTestContext(t, "")

	payload := &openPayload{}
	require.NoError(t, BindAndValidate(c, payload))
}

type opaquePayload struct{}

func (p *opaquePayload) Validate() error { return errors.New("payload rejected") }

func TestBindAndValidateUnknownErrorType(t *testing.T) {
	// Validate() may return something other than validator or custom
	// errors; that must still come back as a 400, not a panic.
	c := newTestContext(t, `{}`)

	err := BindAndValidate(c, &opaquePayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "payload rejected", httpErr.Errors[0].Error)
}
