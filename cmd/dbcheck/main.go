package main

import (
	"log"

	"go-pos-api/internal/config"
	"go-pos-api/internal/model"
	"go-pos-api/pkg/database"

	"github.com/joho/godotenv"
)

// Manual connectivity check against the configured database. Run it when
// the API reports connection errors to tell apart credential, network and
// schema problems.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	log.Println("=== Database connectivity check ===")
	log.Printf("Host: %s", cfg.DBHost)
	log.Printf("Port: %d", cfg.DBPort)
	log.Printf("User: %s", cfg.DBUser)
	log.Printf("Database: %s", cfg.DBName)
	if cfg.DBTLS {
		log.Println("✓ TLS connection enabled")
	}

	// 2. Connect
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Connection failed: %v\n"+
			"Check that the database server is running and that the .env values match your client settings.", err)
	}
	log.Println("✅ Connection established")

	// 3. Probe the product master
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("❌ Failed to count product_master rows: %v", err)
	}
	log.Printf("✅ product_master rows: %d", count)

	var products []model.Product
	if err := db.Limit(3).Find(&products).Error; err != nil {
		log.Fatalf("❌ Failed to read sample products: %v", err)
	}
	log.Println("✅ Sample products:")
	for _, p := range products {
		log.Printf("   - %s: %s (%d)", p.Code, p.Name, p.Price)
	}

	log.Println("✅ All checks passed")
}
