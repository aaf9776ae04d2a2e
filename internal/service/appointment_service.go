package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"
	"go-autoshop/internal/ws"
	"go-autoshop/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentService interface {
	BookAppointment(ownerEmail string, req *model.Appointment) error
	UpdateAppointment(ownerEmail string, id uuid.UUID, req *model.Appointment) (*model.Appointment, error)
	ChangeStatus(ownerEmail string, id uuid.UUID, status string) error
	DeleteAppointment(ownerEmail string, id uuid.UUID) error
	GetAppointments(ownerEmail string, filter AppointmentFilter) ([]model.Appointment, error)
}

// AppointmentFilter narrows the schedule view. With no search term and
// no date the view defaults to today's appointments only.
type AppointmentFilter struct {
	SearchTerm string
	Date       *time.Time
}

type appointmentService struct {
	apptRepo repository.AppointmentRepository
	wsHub    *ws.Hub
	now      func() time.Time
}

func NewAppointmentService(repo repository.AppointmentRepository, hub *ws.Hub) AppointmentService {
	return &appointmentService{apptRepo: repo, wsHub: hub, now: time.Now}
}

func validateAppointment(req *model.Appointment) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return nil
}

func (s *appointmentService) BookAppointment(ownerEmail string, req *model.Appointment) error {
	if err := validateAppointment(req); err != nil {
		return err
	}

	req.OwnerEmail = ownerEmail
	req.CreatedBy = ownerEmail
	req.UpdatedBy = ownerEmail
	if req.Status == "" {
		req.Status = model.AppointmentScheduled
	}
	if !model.ValidAppointmentStatus(req.Status) {
		return ErrInvalidStatus
	}

	if err := s.apptRepo.Create(req); err != nil {
		return err
	}

	s.wsHub.Publish("appointment_update", map[string]interface{}{
		"action":         "booked",
		"appointment_id": req.ID,
		"customer_name":  req.CustomerName,
		"date":           req.AppointmentDate,
		"time":           req.AppointmentTime,
	})
	return nil
}

func (s *appointmentService) UpdateAppointment(ownerEmail string, id uuid.UUID, req *model.Appointment) (*model.Appointment, error) {
	if err := validateAppointment(req); err != nil {
		return nil, err
	}
	if req.Status != "" && !model.ValidAppointmentStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	existing, err := s.apptRepo.FindByID(ownerEmail, id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	existing.CustomerName = req.CustomerName
	existing.ContactNumber = req.ContactNumber
	existing.CustomerEmail = req.CustomerEmail
	existing.AppointmentDate = req.AppointmentDate
	existing.AppointmentTime = req.AppointmentTime
	existing.ServiceType = req.ServiceType
	existing.ItemDetails = req.ItemDetails
	existing.DepositPaid = req.DepositPaid
	existing.Notes = req.Notes
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.UpdatedBy = ownerEmail

	if err := s.apptRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *appointmentService) ChangeStatus(ownerEmail string, id uuid.UUID, status string) error {
	if !model.ValidAppointmentStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.apptRepo.UpdateStatus(ownerEmail, id, status, ownerEmail); err != nil {
		return ErrAppointmentNotFound
	}

	s.wsHub.Publish("appointment_update", map[string]interface{}{
		"action":         "status_changed",
		"appointment_id": id,
		"status":         status,
	})
	return nil
}

func (s *appointmentService) DeleteAppointment(ownerEmail string, id uuid.UUID) error {
	if _, err := s.apptRepo.FindByID(ownerEmail, id); err != nil {
		return ErrAppointmentNotFound
	}
	return s.apptRepo.Delete(ownerEmail, id, ownerEmail)
}

// GetAppointments returns the filtered schedule, sorted by date and
// slot time ascending. The lists are small (one shop's bookings), so
// search and day filters run in memory.
func (s *appointmentService) GetAppointments(ownerEmail string, filter AppointmentFilter) ([]model.Appointment, error) {
	appts, err := s.apptRepo.FindAll(ownerEmail)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(appts, func(i, j int) bool {
		return slotTime(appts[i]).Before(slotTime(appts[j]))
	})

	term := strings.ToLower(strings.TrimSpace(filter.SearchTerm))
	if term != "" {
		matched := appts[:0]
		for _, a := range appts {
			if strings.Contains(strings.ToLower(a.CustomerName), term) ||
				strings.Contains(strings.ToLower(a.ContactNumber), term) {
				matched = append(matched, a)
			}
		}
		appts = matched
		if filter.Date != nil {
			appts = filterSameDay(appts, *filter.Date)
		}
		return appts, nil
	}

	day := s.now()
	if filter.Date != nil {
		day = *filter.Date
	}
	return filterSameDay(appts, day), nil
}

func filterSameDay(appts []model.Appointment, day time.Time) []model.Appointment {
	matched := make([]model.Appointment, 0, len(appts))
	y, m, d := day.Date()
	for _, a := range appts {
		ay, am, ad := a.AppointmentDate.Date()
		if ay == y && am == m && ad == d {
			matched = append(matched, a)
		}
	}
	return matched
}

// slotTime combines the appointment date with its parsed "hh:mm AM"
// slot label for chronological ordering.
func slotTime(a model.Appointment) time.Time {
	hour, min := parseSlotLabel(a.AppointmentTime)
	d := a.AppointmentDate
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, d.Location())
}

// parseSlotLabel converts "hh:mm AM/PM" to 24-hour clock parts.
// Malformed labels sort at midnight.
func parseSlotLabel(label string) (hour, min int) {
	parts := strings.SplitN(strings.TrimSpace(label), " ", 2)
	if len(parts) != 2 {
		return 0, 0
	}

	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return 0, 0
	}
	h, err1 := strconv.Atoi(hm[0])
	m, err2 := strconv.Atoi(hm[1])
	if err1 != nil || err2 != nil {
		return 0, 0
	}

	meridian := strings.ToUpper(parts[1])
	if meridian == "PM" && h != 12 {
		h += 12
	}
	if meridian == "AM" && h == 12 {
		h = 0
	}
	return h, m
}
