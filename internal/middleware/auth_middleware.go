package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"user-management-api/internal/services"
	"user-management-api/internal/store"
	"user-management-api/pkg/utils"
)

// RequireAuth guards routes that need an authenticated account. It verifies
// the bearer token, resolves the account from the store and rejects unknown
// or blocked accounts. Blocking is enforced here on every call, so a token
// issued before an account was blocked stops working immediately.
func RequireAuth(jwtService *services.JWTService, userStore store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c.Get("Authorization"))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authentication required", nil)
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid or expired token", nil)
		}

		user, err := userStore.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid or expired token", nil)
		}

		if user.IsBlocked() {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "account blocked", nil)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("authorization header is required")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	return parts[1], nil
}
