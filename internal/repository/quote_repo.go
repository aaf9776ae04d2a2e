package repository

import (
	"go-autoshop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteRepository interface {
	Create(quote *model.Quote) error
	FindAll(ownerEmail string) ([]model.Quote, error)
	FindByID(ownerEmail string, id uuid.UUID) (*model.Quote, error)
	// Replace swaps the quote's line items and header in place,
	// keeping its id.
	Replace(quote *model.Quote) error
	Delete(ownerEmail string, id uuid.UUID, deletedBy string) error
}

type quoteRepo struct {
	db *gorm.DB
}

func NewQuoteRepo(db *gorm.DB) QuoteRepository {
	return &quoteRepo{db}
}

func (r *quoteRepo) Create(quote *model.Quote) error {
	return r.db.Create(quote).Error
}

func (r *quoteRepo) FindAll(ownerEmail string) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.Preload("Items").
		Where("owner_email = ?", ownerEmail).
		Order("quote_date DESC").
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepo) FindByID(ownerEmail string, id uuid.UUID) (*model.Quote, error) {
	var quote model.Quote
	err := r.db.Preload("Items").
		Where("owner_email = ?", ownerEmail).
		First(&quote, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepo) Replace(quote *model.Quote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Old line items are dropped and re-inserted; the header row
		// keeps its id.
		if err := tx.Where("quote_id = ?", quote.ID).Delete(&model.QuoteItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(quote).Error
	})
}

func (r *quoteRepo) Delete(ownerEmail string, id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Quote{}).
		Where("owner_email = ? AND id = ?", ownerEmail, id).
		Updates(map[string]interface{}{
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"deleted_by": deletedBy,
		}).Error
}
