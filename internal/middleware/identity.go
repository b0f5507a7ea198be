package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/reufer-studio/marketplace-api/internal/server"
)

const (
	// HeaderUserID is set by the storefront after login so requests can
	// be attributed to a user. It is a correlation hint, not a
	// credential: no endpoint grants access based on it.
	HeaderUserID = "X-User-Id"

	// HeaderAuthToken is sent by the storefront alongside the user id.
	// No token validation happens in this service; the header is only
	// allowed through CORS so browsers do not strip it.
	HeaderAuthToken = "X-Auth-Token"
)

// IdentityMiddleware attaches the caller's claimed identity to the
// request context for logging and tracing.
type IdentityMiddleware struct {
	server *server.Server
}

// NewIdentityMiddleware constructs an IdentityMiddleware.
func NewIdentityMiddleware(s *server.Server) *IdentityMiddleware {
	return &IdentityMiddleware{
		server: s,
	}
}

// ExtractIdentity reads the X-User-Id header into the echo context.
// Non-numeric values are dropped rather than propagated into logs.
func (im *IdentityMiddleware) ExtractIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderUserID)
			if raw == "" {
				return next(c)
			}

			if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
				im.server.Logger.Debug().
					Str("header", HeaderUserID).
					Str("value", raw).
					Msg("ignoring malformed user id header")
				return next(c)
			}

			c.Set(UserIDKey, raw)

			return next(c)
		}
	}
}
