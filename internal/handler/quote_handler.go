package handler

import (
	"errors"

	"go-autoshop/internal/service"

	"github.com/gofiber/fiber/v2"
)

type QuoteHandler struct {
	service service.QuoteService
}

func NewQuoteHandler(s service.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: s}
}

func (h *QuoteHandler) GetQuotes(c *fiber.Ctx) error {
	quotes, err := h.service.GetQuotes(ownerEmail(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(quotes)
}

func (h *QuoteHandler) SaveQuote(c *fiber.Ctx) error {
	var req service.SaveQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	quote, err := h.service.SaveQuote(ownerEmail(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuote) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save quote"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Quote saved", "data": quote})
}

func (h *QuoteHandler) UpdateQuote(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quote ID"})
	}

	var req service.SaveQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	quote, err := h.service.UpdateQuote(ownerEmail(c), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuoteNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyQuote):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update quote"})
	}

	return c.JSON(fiber.Map{"message": "Quote updated", "data": quote})
}

func (h *QuoteHandler) DeleteQuote(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quote ID"})
	}

	if err := h.service.DeleteQuote(ownerEmail(c), id); err != nil {
		if errors.Is(err, service.ErrQuoteNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete quote"})
	}

	return c.JSON(fiber.Map{"message": "Quote deleted"})
}

// ConvertToInvoice re-emits the quote as a finalized sale
// POST /api/v1/quotes/:id/convert
func (h *QuoteHandler) ConvertToInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quote ID"})
	}

	sale, err := h.service.ConvertToInvoice(ownerEmail(c), id)
	if err != nil {
		if errors.Is(err, service.ErrQuoteNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to convert quote"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Quote converted to invoice", "data": sale})
}
