package handler

import "github.com/gofiber/fiber/v2"

// SetupRoutes registers the full HTTP surface on app.
func SetupRoutes(app *fiber.App, productHandler *ProductHandler, purchaseHandler *PurchaseHandler, transactionHandler *TransactionHandler) {
	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "POS System API is running"})
	})

	api := app.Group("/api")
	api.Get("/product/:code", productHandler.Search)
	api.Post("/purchase", purchaseHandler.Create)
	api.Get("/transactions", transactionHandler.List)
}
