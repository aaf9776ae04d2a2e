package model

import "time"

// Payment methods accepted at the counter. PaymentNotApplicable is
// stamped on sales produced by quote conversion, where no payment was
// taken through the sales form.
const (
	PaymentCard          = "card"
	PaymentCash          = "cash"
	PaymentNotApplicable = "N/A"
)

// SaleTransaction is a finalized counter sale. Immutable after
// finalize except for delete.
type SaleTransaction struct {
	BaseModel
	OwnerEmail    string     `gorm:"type:varchar(255);not null;index" json:"-"`
	Items         []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
	Subtotal      float64    `gorm:"not null" json:"subtotal"`
	TaxAmount     float64    `gorm:"not null" json:"tax_amount"`
	TotalAmount   float64    `gorm:"not null" json:"total_amount"`
	Profit        float64    `gorm:"not null" json:"profit"`
	Timestamp     time.Time  `gorm:"not null;index" json:"timestamp"`
	CustomerName  string     `gorm:"type:varchar(255)" json:"customer_name"`
	ContactNumber string     `gorm:"type:varchar(50);index" json:"contact_number"`
	CustomerEmail string     `gorm:"type:varchar(255)" json:"customer_email"`
	CarModel      string     `gorm:"type:varchar(100)" json:"car_model"`
	VIN           string     `gorm:"type:varchar(50)" json:"vin"`
	Odometer      string     `gorm:"type:varchar(50)" json:"odometer"`
	PaymentMethod string     `gorm:"type:varchar(10);not null" json:"payment_method"`
	HSTRate       float64    `gorm:"not null" json:"hst_rate"` // rate actually applied, 0 when tax disabled
	Notes         string     `gorm:"type:text" json:"notes"`
	InvoiceNumber int64      `gorm:"not null" json:"invoice_number"`
}
