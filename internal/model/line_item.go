package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LineItem is the shared shape of one line on a sale or a quote.
// CostPrice is internal only (profit calculation); it is never shown
// on customer-facing output.
type LineItem struct {
	InventoryItemID *uuid.UUID `gorm:"type:uuid" json:"inventory_item_id,omitempty"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Quantity        int        `gorm:"not null;default:1" json:"quantity"`
	UnitPrice       float64    `gorm:"not null;default:0" json:"unit_price"`
	CostPrice       float64    `gorm:"not null;default:0" json:"cost_price"`
}

// Total is unitPrice x quantity for this line.
func (l LineItem) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Profit is (unitPrice - costPrice) x quantity for this line.
func (l LineItem) Profit() float64 {
	return (l.UnitPrice - l.CostPrice) * float64(l.Quantity)
}

// SaleItem is one line of a finalized sale.
type SaleItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID   uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	LineItem `gorm:"embedded"`
}

func (s *SaleItem) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// QuoteItem is one line of a saved quote.
type QuoteItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID  uuid.UUID `gorm:"type:uuid;not null;index" json:"quote_id"`
	LineItem `gorm:"embedded"`
}

func (q *QuoteItem) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return
}
