package repository

import (
	"time"

	"go-autoshop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	// Create takes tx so the sale insert participates in the
	// finalize transaction.
	Create(tx *gorm.DB, sale *model.SaleTransaction) error
	FindAll(ownerEmail string) ([]model.SaleTransaction, error)
	FindByID(ownerEmail string, id uuid.UUID) (*model.SaleTransaction, error)
	FindByDateRange(ownerEmail string, start, end time.Time) ([]model.SaleTransaction, error)
	Delete(ownerEmail string, id uuid.UUID, deletedBy string) error

	GetDashboardStats(ownerEmail string) (*DashboardStats, error)
}

// DashboardStats powers the overview cards.
type DashboardStats struct {
	TotalProducts      int64   `json:"total_products"`
	LowStockCount      int64   `json:"low_stock_count"`
	InventoryValuation float64 `json:"inventory_valuation"`
	TotalSalesCount    int64   `json:"total_sales_count"`
	AllTimeRevenue     float64 `json:"all_time_revenue"`
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(tx *gorm.DB, sale *model.SaleTransaction) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindAll(ownerEmail string) ([]model.SaleTransaction, error) {
	var sales []model.SaleTransaction
	err := r.db.Preload("Items").
		Where("owner_email = ?", ownerEmail).
		Order("timestamp DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(ownerEmail string, id uuid.UUID) (*model.SaleTransaction, error) {
	var sale model.SaleTransaction
	err := r.db.Preload("Items").
		Where("owner_email = ?", ownerEmail).
		First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindByDateRange(ownerEmail string, start, end time.Time) ([]model.SaleTransaction, error) {
	var sales []model.SaleTransaction
	err := r.db.Preload("Items").
		Where("owner_email = ? AND timestamp BETWEEN ? AND ?", ownerEmail, start, end).
		Order("timestamp ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Delete(ownerEmail string, id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.SaleTransaction{}).
		Where("owner_email = ? AND id = ?", ownerEmail, id).
		Updates(map[string]interface{}{
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"deleted_by": deletedBy,
		}).Error
}

func (r *saleRepo) GetDashboardStats(ownerEmail string) (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.InventoryItem{}).
		Where("owner_email = ?", ownerEmail).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	// Services carry a sentinel stock and a zero threshold, so the
	// threshold guard keeps them out of the low-stock count.
	if err := r.db.Model(&model.InventoryItem{}).
		Where("owner_email = ? AND category <> ? AND low_stock_threshold > 0 AND stock <= low_stock_threshold",
			ownerEmail, model.CategoryServices).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.InventoryItem{}).
		Where("owner_email = ? AND category <> ?", ownerEmail, model.CategoryServices).
		Select("COALESCE(SUM(stock * cost_price), 0)").
		Scan(&stats.InventoryValuation).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.SaleTransaction{}).
		Where("owner_email = ?", ownerEmail).
		Count(&stats.TotalSalesCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.SaleTransaction{}).
		Where("owner_email = ?", ownerEmail).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.AllTimeRevenue).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
