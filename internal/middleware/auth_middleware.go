package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"intake_backend/pkg/response"
	"intake_backend/pkg/utils/jwt"
)

// The same message covers a missing token, a bad token and a token
// without the admin claim, so callers cannot tell which check failed.
const notAuthorized = "Not authorized to access this route"

// AdminClaims returns the verified claims RequireAdmin stored on the
// request context.
func AdminClaims(c *fiber.Ctx) *jwt.Claims {
	return c.Locals("admin").(*jwt.Claims)
}

// RequireAdmin guards every non-public operation. It expects a Bearer
// token whose claims assert admin privilege.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c.Get("Authorization"))
		if token == "" {
			return response.Unauthorized(c, notAuthorized)
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil || !claims.IsAdmin {
			return response.Unauthorized(c, notAuthorized)
		}

		c.Locals("admin", claims)
		return c.Next()
	}
}

func extractToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}
