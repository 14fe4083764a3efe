package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"user-management-api/internal/handlers"
	"user-management-api/internal/middleware"
	"user-management-api/internal/services"
	"user-management-api/internal/store"
)

// SetupRoutes registers the public auth endpoints and the guarded
// user-management endpoints.
func SetupRoutes(app *fiber.App, h *handlers.Handler, jwtService *services.JWTService, userStore store.UserStore) {
	// Health check route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	// Protected routes
	requireAuth := middleware.RequireAuth(jwtService, userStore)
	auth.Get("/userinfo", requireAuth, h.UserInfo)

	users := api.Group("/users", requireAuth)
	users.Get("/", h.ListUsers)
	users.Patch("/status", h.SetStatus)
	users.Post("/bulk-action", h.BulkAction)
}
