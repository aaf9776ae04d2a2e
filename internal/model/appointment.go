package model

import (
	"fmt"
	"time"
)

// Appointment statuses, mutated via the status dropdown.
const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

// AppointmentStatuses is the fixed status enumeration.
var AppointmentStatuses = []string{
	AppointmentScheduled,
	AppointmentCompleted,
	AppointmentCancelled,
}

// ServiceTypes offered on the booking form.
var ServiceTypes = []string{
	"Tire Installation",
	"Oil Change",
	"Brake Service",
	"General Inspection",
	"Other",
}

type Appointment struct {
	BaseModel
	OwnerEmail      string    `gorm:"type:varchar(255);not null;index" json:"-"`
	CustomerName    string    `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	ContactNumber   string    `gorm:"type:varchar(50);not null" json:"contact_number" validate:"required"`
	CustomerEmail   string    `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	AppointmentDate time.Time `gorm:"not null;index" json:"appointment_date"`
	AppointmentTime string    `gorm:"type:varchar(10);not null" json:"appointment_time" validate:"required"` // slot label, e.g. "10:00 AM"
	ServiceType     string    `gorm:"type:varchar(50);not null" json:"service_type" validate:"required"`
	ItemDetails     string    `gorm:"type:text" json:"item_details,omitempty"` // e.g. tire size, specific part
	DepositPaid     float64   `gorm:"default:0" json:"deposit_paid,omitempty"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	Status          string    `gorm:"type:varchar(20);not null;default:Scheduled" json:"status"`
}

// ValidAppointmentStatus reports whether s is a known status.
func ValidAppointmentStatus(s string) bool {
	for _, known := range AppointmentStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// TimeSlots returns the bookable half-hour slot labels for a full day,
// formatted "hh:mm AM/PM".
func TimeSlots() []string {
	slots := make([]string, 0, 48)
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			h := hour % 12
			if h == 0 {
				h = 12
			}
			ampm := "AM"
			if hour >= 12 {
				ampm = "PM"
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d %s", h, minute, ampm))
		}
	}
	return slots
}
