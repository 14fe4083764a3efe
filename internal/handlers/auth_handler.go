package handlers

import (
	"github.com/gofiber/fiber/v2"

	"user-management-api/internal/models"
	"user-management-api/internal/requests"
	"user-management-api/pkg/utils"
	"user-management-api/pkg/validator"
)

// Register handles user registration
func (h *Handler) Register(c *fiber.Ctx) error {
	var input requests.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request", err)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request", err)
	}

	user, token, err := h.users.Register(c.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		return serviceError(c, "register user", err)
	}

	return utils.CreatedResponse(c, "user registered successfully", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles user authentication
func (h *Handler) Login(c *fiber.Ctx) error {
	var input requests.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request", err)
	}

	if err := validator.ValidateStruct(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request", err)
	}

	user, token, err := h.users.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return serviceError(c, "login user", err)
	}

	return utils.SuccessResponse(c, "login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// UserInfo returns the current user's information
func (h *Handler) UserInfo(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return utils.SuccessResponse(c, "", user)
}
