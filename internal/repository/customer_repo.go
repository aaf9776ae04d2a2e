package repository

import (
	"errors"

	"go-autoshop/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	FindAll(ownerEmail string) ([]model.Customer, error)
	FindByContact(ownerEmail, contactNumber string) (*model.Customer, error)

	// Upsert runs inside tx when the caller is finalizing a sale;
	// non-empty incoming fields win over what is already on file.
	Upsert(tx *gorm.DB, incoming model.Customer) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) FindAll(ownerEmail string) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Where("owner_email = ?", ownerEmail).
		Order("customer_name ASC").
		Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByContact(ownerEmail, contactNumber string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.Where("owner_email = ? AND contact_number = ?", ownerEmail, contactNumber).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) Upsert(tx *gorm.DB, incoming model.Customer) error {
	var existing model.Customer
	err := tx.Where("owner_email = ? AND contact_number = ?", incoming.OwnerEmail, incoming.ContactNumber).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&incoming).Error
		}
		return err
	}

	existing.Merge(incoming)
	return tx.Save(&existing).Error
}
