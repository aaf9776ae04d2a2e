package handler

import (
	"errors"
	"time"

	"go-autoshop/internal/model"
	"go-autoshop/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AppointmentHandler struct {
	service service.AppointmentService
}

func NewAppointmentHandler(s service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

// GetAppointments returns the filtered schedule
// Query params: search (name/contact substring), date (YYYY-MM-DD).
// With neither given, only today's appointments are returned.
func (h *AppointmentHandler) GetAppointments(c *fiber.Ctx) error {
	filter := service.AppointmentFilter{SearchTerm: c.Query("search")}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, use YYYY-MM-DD"})
		}
		filter.Date = &date
	}

	appts, err := h.service.GetAppointments(ownerEmail(c), filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(appts)
}

func (h *AppointmentHandler) BookAppointment(c *fiber.Ctx) error {
	var appt model.Appointment
	if err := c.BodyParser(&appt); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.BookAppointment(ownerEmail(c), &appt); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Appointment booked", "data": appt})
}

func (h *AppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	var appt model.Appointment
	if err := c.BodyParser(&appt); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateAppointment(ownerEmail(c), id, &appt)
	if err != nil {
		if errors.Is(err, service.ErrAppointmentNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Appointment updated", "data": updated})
}

// ChangeStatus handles the status dropdown
// PATCH /api/v1/appointments/:id/status
func (h *AppointmentHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.ChangeStatus(ownerEmail(c), id, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrAppointmentNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to change status"})
	}

	return c.JSON(fiber.Map{"message": "Status updated"})
}

func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	if err := h.service.DeleteAppointment(ownerEmail(c), id); err != nil {
		if errors.Is(err, service.ErrAppointmentNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete appointment"})
	}

	return c.JSON(fiber.Map{"message": "Appointment deleted"})
}

// GetBookingOptions returns the slot labels and service types for the
// booking form.
func (h *AppointmentHandler) GetBookingOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"time_slots":    model.TimeSlots(),
		"service_types": model.ServiceTypes,
		"statuses":      model.AppointmentStatuses,
	})
}
