package repository

import (
	"go-autoshop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(appt *model.Appointment) error
	FindAll(ownerEmail string) ([]model.Appointment, error)
	FindByID(ownerEmail string, id uuid.UUID) (*model.Appointment, error)
	Update(appt *model.Appointment) error
	UpdateStatus(ownerEmail string, id uuid.UUID, status, updatedBy string) error
	Delete(ownerEmail string, id uuid.UUID, deletedBy string) error
}

type appointmentRepo struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db}
}

func (r *appointmentRepo) Create(appt *model.Appointment) error {
	return r.db.Create(appt).Error
}

func (r *appointmentRepo) FindAll(ownerEmail string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.Where("owner_email = ?", ownerEmail).
		Order("appointment_date ASC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) FindByID(ownerEmail string, id uuid.UUID) (*model.Appointment, error) {
	var appt model.Appointment
	err := r.db.Where("owner_email = ?", ownerEmail).First(&appt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepo) Update(appt *model.Appointment) error {
	return r.db.Save(appt).Error
}

func (r *appointmentRepo) UpdateStatus(ownerEmail string, id uuid.UUID, status, updatedBy string) error {
	res := r.db.Model(&model.Appointment{}).
		Where("owner_email = ? AND id = ?", ownerEmail, id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appointmentRepo) Delete(ownerEmail string, id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Appointment{}).
		Where("owner_email = ? AND id = ?", ownerEmail, id).
		Updates(map[string]interface{}{
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"deleted_by": deletedBy,
		}).Error
}
