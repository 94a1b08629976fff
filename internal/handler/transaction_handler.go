package handler

import (
	"fmt"

	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.POSService
}

func NewTransactionHandler(s service.POSService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// List handles GET /api/transactions. Debug view over the most recent
// header rows; no line items, no pagination.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	transactions, err := h.service.ListTransactions(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": fmt.Sprintf("Database error: %v", err),
		})
	}

	return c.JSON(fiber.Map{"transactions": transactions})
}
