package repository

import (
	"go-autoshop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(item *model.InventoryItem) error
	FindAll(ownerEmail string) ([]model.InventoryItem, error)
	FindByID(ownerEmail string, id uuid.UUID) (*model.InventoryItem, error)
	Update(item *model.InventoryItem) error
	Delete(ownerEmail string, id uuid.UUID, deletedBy string) error

	// UpdateStock takes tx so stock decrements run inside the
	// finalize-sale transaction.
	UpdateStock(tx *gorm.DB, ownerEmail string, id uuid.UUID, newStock int, updatedBy string) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(item *model.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepo) FindAll(ownerEmail string) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Where("owner_email = ?", ownerEmail).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByID(ownerEmail string, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.Where("owner_email = ?", ownerEmail).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) Update(item *model.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepo) Delete(ownerEmail string, id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.InventoryItem{}).
		Where("owner_email = ? AND id = ?", ownerEmail, id).
		Updates(map[string]interface{}{
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"deleted_by": deletedBy,
		}).Error
}

func (r *inventoryRepo) UpdateStock(tx *gorm.DB, ownerEmail string, id uuid.UUID, newStock int, updatedBy string) error {
	return tx.Model(&model.InventoryItem{}).
		Where("owner_email = ? AND id = ?", ownerEmail, id).
		Updates(map[string]interface{}{
			"stock":      newStock,
			"updated_by": updatedBy,
		}).Error
}
