package model

import "time"

// Quote parallels SaleTransaction but never touches inventory stock
// and carries no payment or invoice number until converted.
type Quote struct {
	BaseModel
	OwnerEmail     string      `gorm:"type:varchar(255);not null;index" json:"-"`
	Items          []QuoteItem `gorm:"foreignKey:QuoteID" json:"items"`
	Subtotal       float64     `gorm:"not null" json:"subtotal"`
	TaxAmount      float64     `gorm:"not null" json:"tax_amount"`
	TotalAmount    float64     `gorm:"not null" json:"total_amount"`
	QuoteDate      time.Time   `gorm:"not null;index" json:"quote_date"`
	CustomerName   string      `gorm:"type:varchar(255)" json:"customer_name"`
	ContactNumber  string      `gorm:"type:varchar(50);index" json:"contact_number"`
	CustomerEmail  string      `gorm:"type:varchar(255)" json:"customer_email"`
	CarModel       string      `gorm:"type:varchar(100)" json:"car_model"`
	Notes          string      `gorm:"type:text" json:"notes"`
	TaxRateApplied float64     `gorm:"not null" json:"tax_rate_applied"` // e.g. 0.13, or 0 when tax disabled
}
