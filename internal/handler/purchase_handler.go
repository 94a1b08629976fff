package handler

import (
	"fmt"

	"go-pos-api/internal/model"
	"go-pos-api/internal/service"
	"go-pos-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.POSService
}

func NewPurchaseHandler(s service.POSService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// Create handles POST /api/purchase. Schema violations (missing item
// fields) are rejected up front; everything past validation is atomic, so
// a 500 means no rows were persisted.
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var req model.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid JSON body",
		})
	}

	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		firstErr := errs[0]
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": fmt.Sprintf("Validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag),
		})
	}

	resp, err := h.service.RecordPurchase(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": fmt.Sprintf("Purchase failed: %v", err),
		})
	}

	return c.JSON(resp)
}
