package model

import "time"

// Customer is upserted as a side effect whenever a sale or quote is
// saved with a non-empty contact number. Keyed by (owner, contact);
// never deleted explicitly.
type Customer struct {
	OwnerEmail    string    `gorm:"type:varchar(255);primaryKey" json:"-"`
	ContactNumber string    `gorm:"type:varchar(50);primaryKey" json:"contact_number"`
	CustomerName  string    `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerEmail string    `gorm:"type:varchar(255)" json:"customer_email"`
	CarModel      string    `gorm:"type:varchar(100)" json:"car_model"`
	VIN           string    `gorm:"type:varchar(50)" json:"vin"`
	Odometer      string    `gorm:"type:varchar(50)" json:"odometer"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Merge overlays non-empty incoming fields over the existing record.
// Blank incoming fields keep whatever was already on file.
func (c *Customer) Merge(incoming Customer) {
	if incoming.CustomerName != "" {
		c.CustomerName = incoming.CustomerName
	}
	if incoming.CustomerEmail != "" {
		c.CustomerEmail = incoming.CustomerEmail
	}
	if incoming.CarModel != "" {
		c.CarModel = incoming.CarModel
	}
	if incoming.VIN != "" {
		c.VIN = incoming.VIN
	}
	if incoming.Odometer != "" {
		c.Odometer = incoming.Odometer
	}
	if incoming.Notes != "" {
		c.Notes = incoming.Notes
	}
}
