package handler

import (
	"errors"
	"time"

	"go-autoshop/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetSalesReport returns revenue/profit/margin summaries and the
// day-bucketed chart series
// Query params: from, to (YYYY-MM-DD, inclusive), customer (contact number).
func (h *ReportHandler) GetSalesReport(c *fiber.Ctx) error {
	filter := service.ReportFilter{CustomerContact: c.Query("customer")}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid 'from' date, use YYYY-MM-DD"})
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid 'to' date, use YYYY-MM-DD"})
		}
		filter.To = &to
	}

	report, err := h.service.SalesReport(ownerEmail(c), filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}
	return c.JSON(report)
}

// GetDashboardStats returns overview statistics
func (h *ReportHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.DashboardStats(ownerEmail(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// UnlockReports verifies the reports-page password
// POST /api/v1/reports/unlock
func (h *ReportHandler) UnlockReports(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UnlockReports(ownerEmail(c), req.Password); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			return c.Status(403).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify password"})
	}

	return c.JSON(fiber.Map{"message": "Reports unlocked"})
}
