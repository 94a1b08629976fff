package handler

import (
	"fmt"

	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.POSService
}

func NewProductHandler(s service.POSService) *ProductHandler {
	return &ProductHandler{service: s}
}

// Search handles GET /api/product/:code. "Not found" is a 200 with all
// fields null; only database failures produce an error response.
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	code := c.Params("code")

	resp, err := h.service.LookupProduct(code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": fmt.Sprintf("Database error: %v", err),
		})
	}

	return c.JSON(resp)
}
