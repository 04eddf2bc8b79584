package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"go-pescados/internal/config"
	"go-pescados/internal/handler"
	"go-pescados/internal/repository"
	"go-pescados/internal/service"
	"go-pescados/internal/ws"
	"go-pescados/pkg/database"
	applog "go-pescados/pkg/logger"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found")
	}
	cfg := config.Load()
	applog.Setup(cfg.LogLevel)

	// Money goes out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Setup Database
	store, err := database.ConnectDB(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer store.Close()

	if err := repository.EnsureSchema(ctx, store.Gorm()); err != nil {
		logrus.WithError(err).Fatal("Failed to prepare schema")
	}

	// 3. Seed the starter catalog
	productRepo := repository.NewProductRepo(store.Gorm())
	if n, err := productRepo.SeedDefaults(ctx); err != nil {
		logrus.WithError(err).Warn("Failed to seed products")
	} else if n > 0 {
		logrus.Infof("Seeded %d products", n)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run(ctx)

	// 5. Dependency Injection (Wiring Layers)
	txRepo := repository.NewTransactionRepo(store.Gorm())
	summaryRepo := repository.NewSummaryRepo(store.Gorm())

	invService := service.NewInventoryService(productRepo, txRepo, summaryRepo, wsHub)
	dashService := service.NewDashboardService(txRepo, summaryRepo)

	invHandler := handler.NewInventoryHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")
	api.Get("/health", func(c *fiber.Ctx) error {
		if err := store.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "backend": store.Backend()})
		}
		return c.JSON(fiber.Map{"status": "ok", "backend": store.Backend()})
	})
	handler.RegisterRoutes(api, invHandler, dashHandler)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.WithError(err).Panic("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}
	cancel()

	logrus.Info("Server exited")
}
