package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"user-management-api/internal/services"
	"user-management-api/pkg/utils"
)

// Handler bundles the HTTP handlers around a single account service. It is
// constructed once in main and registered through routes.SetupRoutes.
type Handler struct {
	users *services.UserService
}

func New(users *services.UserService) *Handler {
	return &Handler{users: users}
}

// serviceError translates an account-service error into an HTTP response.
func serviceError(c *fiber.Ctx, operation string, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request", ve)
	case errors.Is(err, services.ErrEmailTaken):
		return utils.ErrorResponse(c, fiber.StatusConflict, "email already exists", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, services.ErrAccountBlocked):
		return utils.ErrorResponse(c, fiber.StatusForbidden, "account blocked", nil)
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
	default:
		utils.LogError(operation, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "internal server error", nil)
	}
}
