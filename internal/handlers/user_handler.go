package handlers

import (
	"github.com/gofiber/fiber/v2"

	"user-management-api/internal/constants"
	"user-management-api/internal/requests"
	"user-management-api/pkg/utils"
	"user-management-api/pkg/validator"
)

// ListUsers returns every account for the administrative view.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.Context())
	if err != nil {
		return serviceError(c, "list users", err)
	}

	return utils.SuccessResponse(c, "", fiber.Map{
		"data": users,
	})
}

// SetStatus blocks or unblocks a single account by email.
func (h *Handler) SetStatus(c *fiber.Ctx) error {
	var input requests.SetStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request", err)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request", err)
	}

	if err := h.users.SetStatus(c.Context(), input.Email, constants.UserStatus(input.Status)); err != nil {
		return serviceError(c, "set user status", err)
	}

	return utils.SuccessResponse(c, "status updated successfully", nil)
}

// BulkAction blocks, unblocks or deletes a set of accounts in one call.
func (h *Handler) BulkAction(c *fiber.Ctx) error {
	var input requests.BulkActionRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request", err)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request", err)
	}

	action := constants.BulkAction(input.Action)
	if err := h.users.BulkAction(c.Context(), input.UserIDs, action); err != nil {
		return serviceError(c, "bulk user action", err)
	}

	return utils.SuccessResponse(c, "users "+input.Action+"ed successfully", nil)
}
