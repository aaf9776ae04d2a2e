package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// InvoiceNumberBase seeds the per-shop invoice counter; the first
// finalized sale is numbered InvoiceNumberBase + 1.
const InvoiceNumberBase = 999

// User is a shop owner account. The email doubles as the tenant key:
// every domain row is namespaced by it. The row also carries the shop
// profile printed on invoices and the running invoice counter.
type User struct {
	BaseModel
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON

	// Shop profile
	ShopName    string `gorm:"type:varchar(255)" json:"shop_name"`
	Address     string `gorm:"type:text" json:"address"`
	PhoneNumber string `gorm:"type:varchar(50)" json:"phone_number"`

	// Per-shop running invoice counter, incremented atomically at
	// finalize time.
	LastInvoiceNumber int64 `gorm:"not null;default:999" json:"last_invoice_number"`

	// Optional gate for the reports page; empty means no gate.
	ReportsPassword string `gorm:"type:varchar(255)" json:"-"`

	IsActive     bool       `gorm:"default:true" json:"is_active"`
	TokenVersion string     `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
	LastSeenAt   *time.Time `json:"last_seen_at,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// SetReportsPassword hashes and sets the reports-page password.
func (u *User) SetReportsPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.ReportsPassword = string(hashedPassword)
	return nil
}

// CheckReportsPassword verifies the reports-page password. A shop with
// no reports password set accepts any attempt.
func (u *User) CheckReportsPassword(password string) bool {
	if u.ReportsPassword == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(u.ReportsPassword), []byte(password)) == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	Email          string `json:"email"`
	ShopName       string `json:"shop_name"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phone_number"`
	HasReportsGate bool   `json:"has_reports_gate"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		Email:          u.Email,
		ShopName:       u.ShopName,
		Address:        u.Address,
		PhoneNumber:    u.PhoneNumber,
		HasReportsGate: u.ReportsPassword != "",
	}
}
