package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-api/internal/config"
	"go-pos-api/internal/handler"
	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/internal/service"
	"go-pos-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	// 2. Setup Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	// Auto Migrate (the product master is seeded externally; this only
	// keeps the schema in place for fresh databases)
	if err := db.AutoMigrate(&model.Product{}, &model.Transaction{}, &model.TransactionDetail{}); err != nil {
		log.Fatal("Failed to migrate database schema. \n", err)
	}

	// 3. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	posService := service.NewPOSService(productRepo, txRepo, db)

	productHandler := handler.NewProductHandler(posService)
	purchaseHandler := handler.NewPurchaseHandler(posService)
	transactionHandler := handler.NewTransactionHandler(posService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS System API",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	handler.SetupRoutes(app, productHandler, purchaseHandler, transactionHandler)

	// 6. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
