package service

import (
	"errors"
	"strings"
	"time"

	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"
	"go-autoshop/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptySale      = errors.New("cannot finalize an empty sale, add items first")
	ErrInvalidPayment = errors.New("payment method must be card or cash")
	ErrSaleNotFound   = errors.New("sale not found")
)

type SalesService interface {
	FinalizeSale(ownerEmail string, req *FinalizeSaleRequest) (*model.SaleTransaction, error)
	GetSales(ownerEmail string) ([]model.SaleTransaction, error)
	DeleteSale(ownerEmail string, id uuid.UUID) error
	GetCustomers(ownerEmail string) ([]model.Customer, error)
}

// FinalizeSaleRequest is what the sales page submits at checkout.
type FinalizeSaleRequest struct {
	Items         []model.LineItem `json:"items"`
	CustomerName  string           `json:"customer_name"`
	ContactNumber string           `json:"contact_number"`
	CustomerEmail string           `json:"customer_email"`
	CarModel      string           `json:"car_model"`
	VIN           string           `json:"vin"`
	Odometer      string           `json:"odometer"`
	PaymentMethod string           `json:"payment_method"`
	Notes         string           `json:"notes"`
	ApplyTax      bool             `json:"apply_tax"`
	SaleDate      *time.Time       `json:"sale_date,omitempty"`
}

type salesService struct {
	saleRepo      repository.SaleRepository
	inventoryRepo repository.InventoryRepository
	customerRepo  repository.CustomerRepository
	userRepo      repository.UserRepository
	db            *gorm.DB
	wsHub         *ws.Hub
}

func NewSalesService(
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	db *gorm.DB,
	hub *ws.Hub,
) SalesService {
	return &salesService{
		saleRepo:      saleRepo,
		inventoryRepo: inventoryRepo,
		customerRepo:  customerRepo,
		userRepo:      userRepo,
		db:            db,
		wsHub:         hub,
	}
}

// orNA substitutes the counter-slip placeholder for blank fields.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return strings.TrimSpace(s)
}

// FinalizeSale validates the cart, then runs invoice numbering, the
// sale insert, stock decrements, and the customer upsert as one
// database transaction. Either the whole sale lands or none of it
// does.
func (s *salesService) FinalizeSale(ownerEmail string, req *FinalizeSaleRequest) (*model.SaleTransaction, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptySale
	}
	if req.PaymentMethod != model.PaymentCard && req.PaymentMethod != model.PaymentCash {
		return nil, ErrInvalidPayment
	}

	items := make([]model.SaleItem, len(req.Items))
	lines := make([]model.LineItem, len(req.Items))
	for i, raw := range req.Items {
		lines[i] = NormalizeLineItem(raw)
		items[i] = model.SaleItem{LineItem: lines[i]}
	}

	appliedRate := 0.0
	if req.ApplyTax {
		appliedRate = HSTRate
	}
	totals := ComputeTotals(lines, req.ApplyTax, HSTRate)

	timestamp := time.Now()
	if req.SaleDate != nil {
		timestamp = *req.SaleDate
	}

	sale := &model.SaleTransaction{
		OwnerEmail:    ownerEmail,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TaxAmount:     totals.TaxAmount,
		TotalAmount:   totals.TotalAmount,
		Profit:        TotalProfit(lines),
		Timestamp:     timestamp,
		CustomerName:  orNA(req.CustomerName),
		ContactNumber: orNA(req.ContactNumber),
		CustomerEmail: orNA(req.CustomerEmail),
		CarModel:      orNA(req.CarModel),
		VIN:           orNA(req.VIN),
		Odometer:      orNA(req.Odometer),
		PaymentMethod: req.PaymentMethod,
		HSTRate:       appliedRate,
		Notes:         orNA(req.Notes),
	}
	sale.CreatedBy = ownerEmail
	sale.UpdatedBy = ownerEmail

	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoiceNumber, err := s.userRepo.NextInvoiceNumber(tx, ownerEmail)
		if err != nil {
			return err
		}
		sale.InvoiceNumber = invoiceNumber

		if err := s.saleRepo.Create(tx, sale); err != nil {
			return err
		}

		if err := s.decrementStock(tx, ownerEmail, lines); err != nil {
			return err
		}

		return s.upsertCustomer(tx, ownerEmail, req.ContactNumber, model.Customer{
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerEmail: strings.TrimSpace(req.CustomerEmail),
			CarModel:      strings.TrimSpace(req.CarModel),
			VIN:           strings.TrimSpace(req.VIN),
			Odometer:      strings.TrimSpace(req.Odometer),
			Notes:         strings.TrimSpace(req.Notes),
		})
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish("sale_recorded", map[string]interface{}{
		"sale_id":        sale.ID,
		"invoice_number": sale.InvoiceNumber,
		"total_amount":   sale.TotalAmount,
		"customer_name":  sale.CustomerName,
	})
	return sale, nil
}

// decrementStock reduces stock for every inventory-linked line whose
// item is not a service. Stock never goes below zero.
func (s *salesService) decrementStock(tx *gorm.DB, ownerEmail string, lines []model.LineItem) error {
	for _, line := range lines {
		if line.InventoryItemID == nil {
			continue
		}

		var item model.InventoryItem
		if err := tx.Where("owner_email = ?", ownerEmail).
			First(&item, "id = ?", *line.InventoryItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Line references an item deleted since it was added
				// to the cart; the sale still stands.
				continue
			}
			return err
		}
		if item.IsService() {
			continue
		}

		newStock := item.Stock - line.Quantity
		if newStock < 0 {
			newStock = 0
		}
		if err := s.inventoryRepo.UpdateStock(tx, ownerEmail, item.ID, newStock, ownerEmail); err != nil {
			return err
		}

		if item.LowStockThreshold > 0 && newStock <= item.LowStockThreshold {
			s.wsHub.Publish("stock_update", map[string]interface{}{
				"action": "low_stock",
				"item": map[string]interface{}{
					"id":    item.ID,
					"name":  item.Name,
					"stock": newStock,
				},
			})
		}
	}
	return nil
}

func (s *salesService) upsertCustomer(tx *gorm.DB, ownerEmail, contactNumber string, incoming model.Customer) error {
	contactNumber = strings.TrimSpace(contactNumber)
	if contactNumber == "" {
		return nil
	}
	incoming.OwnerEmail = ownerEmail
	incoming.ContactNumber = contactNumber
	return s.customerRepo.Upsert(tx, incoming)
}

func (s *salesService) GetSales(ownerEmail string) ([]model.SaleTransaction, error) {
	return s.saleRepo.FindAll(ownerEmail)
}

func (s *salesService) DeleteSale(ownerEmail string, id uuid.UUID) error {
	if _, err := s.saleRepo.FindByID(ownerEmail, id); err != nil {
		return ErrSaleNotFound
	}
	return s.saleRepo.Delete(ownerEmail, id, ownerEmail)
}

func (s *salesService) GetCustomers(ownerEmail string) ([]model.Customer, error) {
	return s.customerRepo.FindAll(ownerEmail)
}
