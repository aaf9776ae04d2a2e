package service

import (
	"testing"
	"time"

	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixedNow is "today" for every appointment test.
var fixedNow = time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)

func newApptFixture(t *testing.T) (*gorm.DB, *appointmentService) {
	t.Helper()
	db := newTestDB(t)
	seedOwner(t, db)

	svc := NewAppointmentService(repository.NewAppointmentRepo(db), nil).(*appointmentService)
	svc.now = func() time.Time { return fixedNow }
	return db, svc
}

func seedAppt(t *testing.T, svc *appointmentService, name, contact, slot string, date time.Time) *model.Appointment {
	t.Helper()
	appt := &model.Appointment{
		CustomerName:    name,
		ContactNumber:   contact,
		AppointmentDate: date,
		AppointmentTime: slot,
		ServiceType:     "Tire Installation",
	}
	require.NoError(t, svc.BookAppointment(testOwner, appt))
	return appt
}

func TestBookAppointmentDefaultsToScheduled(t *testing.T) {
	_, svc := newApptFixture(t)

	appt := seedAppt(t, svc, "Lee Nguyen", "555-0142", "10:00 AM", fixedNow)
	assert.Equal(t, model.AppointmentScheduled, appt.Status)
}

func TestBookAppointmentValidation(t *testing.T) {
	_, svc := newApptFixture(t)

	err := svc.BookAppointment(testOwner, &model.Appointment{CustomerName: "No Contact"})
	assert.ErrorContains(t, err, "ContactNumber")
}

func TestGetAppointmentsDefaultsToToday(t *testing.T) {
	_, svc := newApptFixture(t)
	seedAppt(t, svc, "Today A", "555-0001", "02:30 PM", fixedNow)
	seedAppt(t, svc, "Today B", "555-0002", "09:00 AM", fixedNow)
	seedAppt(t, svc, "Tomorrow", "555-0003", "09:00 AM", fixedNow.AddDate(0, 0, 1))

	appts, err := svc.GetAppointments(testOwner, AppointmentFilter{})
	require.NoError(t, err)
	require.Len(t, appts, 2)

	// Sorted by slot time within the day.
	assert.Equal(t, "Today B", appts[0].CustomerName)
	assert.Equal(t, "Today A", appts[1].CustomerName)
}

func TestGetAppointmentsSearchSpansAllDates(t *testing.T) {
	_, svc := newApptFixture(t)
	seedAppt(t, svc, "Lee Nguyen", "555-0142", "10:00 AM", fixedNow)
	seedAppt(t, svc, "Lee Nguyen", "555-0142", "10:00 AM", fixedNow.AddDate(0, 0, 7))
	seedAppt(t, svc, "Someone Else", "555-0999", "11:00 AM", fixedNow)

	appts, err := svc.GetAppointments(testOwner, AppointmentFilter{SearchTerm: "lee"})
	require.NoError(t, err)
	assert.Len(t, appts, 2)

	// Contact number matches too.
	appts, err = svc.GetAppointments(testOwner, AppointmentFilter{SearchTerm: "0999"})
	require.NoError(t, err)
	assert.Len(t, appts, 1)
}

func TestGetAppointmentsExplicitDate(t *testing.T) {
	_, svc := newApptFixture(t)
	seedAppt(t, svc, "Today", "555-0001", "10:00 AM", fixedNow)
	target := fixedNow.AddDate(0, 0, 3)
	seedAppt(t, svc, "Later", "555-0002", "10:00 AM", target)

	appts, err := svc.GetAppointments(testOwner, AppointmentFilter{Date: &target})
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "Later", appts[0].CustomerName)
}

func TestChangeStatus(t *testing.T) {
	db, svc := newApptFixture(t)
	appt := seedAppt(t, svc, "Lee Nguyen", "555-0142", "10:00 AM", fixedNow)

	require.NoError(t, svc.ChangeStatus(testOwner, appt.ID, model.AppointmentCompleted))

	var got model.Appointment
	require.NoError(t, db.First(&got, "id = ?", appt.ID).Error)
	assert.Equal(t, model.AppointmentCompleted, got.Status)

	assert.ErrorIs(t, svc.ChangeStatus(testOwner, appt.ID, "Done"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.ChangeStatus(testOwner, uuid.New(), model.AppointmentCancelled), ErrAppointmentNotFound)
}

func TestDeleteAppointment(t *testing.T) {
	_, svc := newApptFixture(t)
	appt := seedAppt(t, svc, "Lee Nguyen", "555-0142", "10:00 AM", fixedNow)

	require.NoError(t, svc.DeleteAppointment(testOwner, appt.ID))
	assert.ErrorIs(t, svc.DeleteAppointment(testOwner, appt.ID), ErrAppointmentNotFound)
}

func TestParseSlotLabel(t *testing.T) {
	cases := []struct {
		label string
		hour  int
		min   int
	}{
		{"12:00 AM", 0, 0},
		{"09:30 AM", 9, 30},
		{"12:30 PM", 12, 30},
		{"02:30 PM", 14, 30},
		{"11:30 PM", 23, 30},
		{"garbage", 0, 0},
	}
	for _, tc := range cases {
		h, m := parseSlotLabel(tc.label)
		assert.Equal(t, tc.hour, h, tc.label)
		assert.Equal(t, tc.min, m, tc.label)
	}
}

func TestTimeSlotsGrid(t *testing.T) {
	slots := model.TimeSlots()
	require.Len(t, slots, 48)
	assert.Equal(t, "12:00 AM", slots[0])
	assert.Equal(t, "12:30 AM", slots[1])
	assert.Equal(t, "12:00 PM", slots[24])
	assert.Equal(t, "11:30 PM", slots[47])
}
