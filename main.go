package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/V-Favre/kos/internal/config"
	"github.com/V-Favre/kos/internal/handlers"
	"github.com/V-Favre/kos/internal/middleware"
	"github.com/V-Favre/kos/internal/models"
	"github.com/V-Favre/kos/internal/repositories"
	"github.com/V-Favre/kos/internal/services"
)

// setupLogger configures the application log format and level.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// NewApp wires the full application: database, repositories, services
// and the Fiber app with all routes registered. Tests reuse it against
// an in-memory database path.
func NewApp(cfg *config.Config) (*fiber.App, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		return nil, err
	}

	orderRepo := repositories.NewGORMOrderRepository(db)
	sessions := services.NewEditSessionManager()
	orderService := services.NewOrderService(orderRepo, sessions, cfg)
	orderHandler := handlers.NewOrderHandler(orderService, cfg.Menu)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.Session())

	apiV1 := app.Group("/api/v1")
	orderHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, nil
}

func main() {
	setupLogger()
	cfg := config.Load()

	app, err := NewApp(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize application")
	}

	log.WithFields(log.Fields{
		"port":   cfg.AppPort,
		"db":     cfg.DatabasePath,
		"window": cfg.OrderWindow,
	}).Info("starting kebab order system")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.WithError(err).Fatal("server failed to start")
		}
	}()

	<-quit
	log.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server gracefully stopped")
}
