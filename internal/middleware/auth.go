// Package middleware provides the HTTP middleware for the application.
package middleware

import (
	"strings"

	"paywave/internal/services/identity"
	"paywave/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthUIDKey is the locals key the verified auth UID is stored under.
const AuthUIDKey = "authUID"

// Auth verifies the bearer token via the identity provider and stores
// the external auth UID in the request locals.
func Auth(verifier identity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "missing authorization header")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		authUID, err := verifier.Verify(c.Context(), token)
		if err != nil {
			return response.Unauthorized(c, "invalid token")
		}

		c.Locals(AuthUIDKey, authUID)
		return c.Next()
	}
}

// AuthUID reads the verified auth UID stored by Auth.
func AuthUID(c *fiber.Ctx) string {
	uid, _ := c.Locals(AuthUIDKey).(string)
	return uid
}
