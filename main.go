package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"user-management-api/internal/config"
	"user-management-api/internal/constants"
	"user-management-api/internal/handlers"
	"user-management-api/internal/routes"
	"user-management-api/internal/services"
	"user-management-api/internal/store"
	"user-management-api/pkg/database"
	"user-management-api/pkg/utils"
	"user-management-api/pkg/validator"
)

func main() {
	if err := config.LoadConfig(constants.EnvValidationRules); err != nil {
		utils.LogFatal("load config", err)
	}

	validator.InitValidator()

	userStore, err := openStore()
	if err != nil {
		utils.LogFatal("connect database", err)
	}

	jwtService := services.NewJWTService(config.Env.JWT.Secret, config.Auth.TokenExpiry())
	userService := services.NewUserService(userStore, jwtService, config.Auth)
	handler := handlers.New(userService)

	app := fiber.New(fiber.Config{})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Env.CORS.Origins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	routes.SetupRoutes(app, handler, jwtService, userStore)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		utils.LogInfo("server", "shutdown signal received")
		if err := app.Shutdown(); err != nil {
			utils.LogError("server shutdown", err)
		}
	}()

	if err := app.Listen(":" + config.Env.Server.Port); err != nil {
		utils.LogFatal("start server", err)
	}
}

// openStore picks the credential store implementation fixed at startup by
// DB_DRIVER. The memory driver exists for local runs without a database.
func openStore() (store.UserStore, error) {
	if config.Env.DB.Driver == "memory" {
		return store.NewMemoryStore(), nil
	}

	db, err := database.Connect(config.Env)
	if err != nil {
		return nil, err
	}
	return store.NewGormStore(db), nil
}
