package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"user-service/internal/adapters/http/middleware"
	"user-service/internal/adapters/http/routes"
	"user-service/internal/adapters/persistence/models"
	"user-service/internal/config"
	"user-service/internal/core/services"
	"user-service/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	_ "user-service/docs" // Swagger docs
)

// @title User Service API
// @version 1.0
// @description User management service with activity enrichment
// @BasePath /

var rootCmd = &cobra.Command{
	Use:   "user-service",
	Short: "User management HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return err
		}
		defer config.CloseDatabase()

		if err := models.AutoMigrate(db); err != nil {
			return err
		}
		log.Println("✅ Database migration completed")

		if seed {
			return config.NewSeeder(db).Run()
		}
		return nil
	},
}

var seed bool

func main() {
	migrateCmd.Flags().BoolVar(&seed, "seed", false, "seed a development admin user")
	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func serve() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("❌ Failed to load configuration: %v", err)
		return err
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Printf("❌ Failed to connect to database: %v", err)
		return err
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Printf("❌ Failed to auto migrate: %v", err)
		return err
	}
	log.Println("✅ Database migration completed")

	// Database health probe
	cronService := services.NewCronService(services.NewHealthService(db), cfg.HealthCron)
	if err := cronService.Start(); err != nil {
		log.Printf("❌ Failed to schedule health probe: %v", err)
		return err
	}
	defer cronService.Stop()

	m := metrics.New()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "User Service API v1.0",
		ErrorHandler: middleware.ErrorHandler(m),
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg, m)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
		return err
	}
	return nil
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
