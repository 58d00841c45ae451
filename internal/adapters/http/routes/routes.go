package routes

import (
	"time"

	"user-service/internal/adapters/client"
	"user-service/internal/adapters/http/handlers"
	"user-service/internal/adapters/http/middleware"
	"user-service/internal/adapters/persistence/repositories"
	"user-service/internal/config"
	"user-service/internal/core/services"
	"user-service/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, m *metrics.Metrics) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)

	// Outbound clients
	activityClient := client.NewActivityClient(cfg.Activity.Host, cfg.Activity.Path)

	// Initialize services
	persistence := services.NewUserPersistenceService(userRepo)
	userService := services.NewUserService(persistence, activityClient)
	healthService := services.NewHealthService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(healthService, cfg.AppMode)
	userHandler := handlers.NewUserHandler(userService)

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", middleware.CacheControl(time.Hour), swagger.HandlerDefault)

	v1 := app.Group("/v1", middleware.NoStore())
	setupUserRoutes(v1.Group("/users"), userHandler)
}

func setupUserRoutes(router fiber.Router, userHandler *handlers.UserHandler) {
	router.Post("/", userHandler.CreateUser)
	router.Get("/", userHandler.ListUsers)
	router.Get("/:id", userHandler.GetUser)
	router.Patch("/:id", userHandler.UpdateUser)
	router.Delete("/:id", userHandler.DeleteUser)
	router.Post("/:id/keys", userHandler.GenerateKeyPair)
}
