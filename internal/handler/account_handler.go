package handler

import (
	"errors"

	"go-autoshop/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(s service.AccountService) *AccountHandler {
	return &AccountHandler{service: s}
}

// GetProfile returns the shop details printed on invoices
// GET /api/v1/account
func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(ownerEmail(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(profile)
}

// UpdateProfile updates shop name, address, and phone number
// PUT /api/v1/account
func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	var req service.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	profile, err := h.service.UpdateProfile(ownerEmail(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated", "data": profile})
}

// SetReportsPassword sets the reports-page gate
// PUT /api/v1/account/reports-password
func (h *AccountHandler) SetReportsPassword(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if len(req.Password) < 4 {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 4 characters"})
	}

	if err := h.service.SetReportsPassword(ownerEmail(c), req.Password); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to set reports password"})
	}

	return c.JSON(fiber.Map{"message": "Reports password set"})
}
