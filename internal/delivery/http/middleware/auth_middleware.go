package middleware

import (
	"strings"

	"streesilk/internal/delivery/http/response"
	"streesilk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityContextKey is where the verified identity lives on the Echo context.
const identityContextKey = "identity"

// AuthMiddleware verifies identity-provider bearer tokens and puts the
// verified identity on the request context.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header with a Bearer token is required")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(identityContextKey, identity)

		return next(c)
	}
}

// OptionalAuthenticate attaches an identity when a valid bearer token is
// present and lets the request through anonymously otherwise. Used by
// surfaces like contact submission that accept both.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if identity, err := m.verifier.Verify(c.Request().Context(), token); err == nil {
				c.Set(identityContextKey, identity)
			}
		}

		return next(c)
	}
}

// IdentityFrom returns the verified identity set by Authenticate, or nil.
func IdentityFrom(c echo.Context) *service.Identity {
	identity, _ := c.Get(identityContextKey).(*service.Identity)

	return identity
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}

	return token, true
}
