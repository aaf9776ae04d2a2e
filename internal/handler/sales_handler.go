package handler

import (
	"errors"

	"go-autoshop/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetSales(ownerEmail(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(sales)
}

// FinalizeSale records the checkout
// POST /api/v1/sales
func (h *SalesHandler) FinalizeSale(c *fiber.Ctx) error {
	var req service.FinalizeSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.service.FinalizeSale(ownerEmail(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptySale) || errors.Is(err, service.ErrInvalidPayment) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to finalize sale"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale finalized", "data": sale})
}

func (h *SalesHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	if err := h.service.DeleteSale(ownerEmail(c), id); err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete sale"})
	}

	return c.JSON(fiber.Map{"message": "Sale deleted"})
}

// GetCustomers feeds the sales-page customer autofill combobox.
func (h *SalesHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetCustomers(ownerEmail(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(customers)
}
