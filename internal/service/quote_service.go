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
	ErrEmptyQuote    = errors.New("cannot save a quote with no items")
	ErrQuoteNotFound = errors.New("quote not found")
)

type QuoteService interface {
	SaveQuote(ownerEmail string, req *SaveQuoteRequest) (*model.Quote, error)
	UpdateQuote(ownerEmail string, id uuid.UUID, req *SaveQuoteRequest) (*model.Quote, error)
	DeleteQuote(ownerEmail string, id uuid.UUID) error
	GetQuotes(ownerEmail string) ([]model.Quote, error)
	ConvertToInvoice(ownerEmail string, id uuid.UUID) (*model.SaleTransaction, error)
}

// SaveQuoteRequest is what the quotes page submits.
type SaveQuoteRequest struct {
	Items         []model.LineItem `json:"items"`
	CustomerName  string           `json:"customer_name"`
	ContactNumber string           `json:"contact_number"`
	CustomerEmail string           `json:"customer_email"`
	CarModel      string           `json:"car_model"`
	Notes         string           `json:"notes"`
	ApplyTax      bool             `json:"apply_tax"`
	QuoteDate     *time.Time       `json:"quote_date,omitempty"`
}

type quoteService struct {
	quoteRepo    repository.QuoteRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	db *gorm.DB,
	hub *ws.Hub,
) QuoteService {
	return &quoteService{
		quoteRepo:    quoteRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		db:           db,
		wsHub:        hub,
	}
}

// buildQuote normalizes the line items and computes totals. Quotes
// share the sale totals semantics but never touch inventory stock.
func (s *quoteService) buildQuote(ownerEmail string, req *SaveQuoteRequest) *model.Quote {
	items := make([]model.QuoteItem, len(req.Items))
	lines := make([]model.LineItem, len(req.Items))
	for i, raw := range req.Items {
		lines[i] = NormalizeLineItem(raw)
		items[i] = model.QuoteItem{LineItem: lines[i]}
	}

	appliedRate := 0.0
	if req.ApplyTax {
		appliedRate = HSTRate
	}
	totals := ComputeTotals(lines, req.ApplyTax, HSTRate)

	quoteDate := time.Now()
	if req.QuoteDate != nil {
		quoteDate = *req.QuoteDate
	}

	quote := &model.Quote{
		OwnerEmail:     ownerEmail,
		Items:          items,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		TotalAmount:    totals.TotalAmount,
		QuoteDate:      quoteDate,
		CustomerName:   orNA(req.CustomerName),
		ContactNumber:  orNA(req.ContactNumber),
		CustomerEmail:  orNA(req.CustomerEmail),
		CarModel:       orNA(req.CarModel),
		Notes:          orNA(req.Notes),
		TaxRateApplied: appliedRate,
	}
	quote.CreatedBy = ownerEmail
	quote.UpdatedBy = ownerEmail
	return quote
}

func (s *quoteService) upsertCustomer(ownerEmail string, req *SaveQuoteRequest) error {
	contactNumber := strings.TrimSpace(req.ContactNumber)
	if contactNumber == "" {
		return nil
	}
	return s.customerRepo.Upsert(s.db, model.Customer{
		OwnerEmail:    ownerEmail,
		ContactNumber: contactNumber,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CarModel:      strings.TrimSpace(req.CarModel),
		Notes:         strings.TrimSpace(req.Notes),
	})
}

func (s *quoteService) SaveQuote(ownerEmail string, req *SaveQuoteRequest) (*model.Quote, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyQuote
	}

	quote := s.buildQuote(ownerEmail, req)
	if err := s.quoteRepo.Create(quote); err != nil {
		return nil, err
	}

	if err := s.upsertCustomer(ownerEmail, req); err != nil {
		return nil, err
	}
	return quote, nil
}

// UpdateQuote replaces the quote in place, keeping its id.
func (s *quoteService) UpdateQuote(ownerEmail string, id uuid.UUID, req *SaveQuoteRequest) (*model.Quote, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyQuote
	}

	existing, err := s.quoteRepo.FindByID(ownerEmail, id)
	if err != nil {
		return nil, ErrQuoteNotFound
	}

	quote := s.buildQuote(ownerEmail, req)
	quote.ID = existing.ID
	quote.CreatedAt = existing.CreatedAt
	quote.CreatedBy = existing.CreatedBy
	for i := range quote.Items {
		quote.Items[i].QuoteID = quote.ID
	}

	if err := s.quoteRepo.Replace(quote); err != nil {
		return nil, err
	}

	if err := s.upsertCustomer(ownerEmail, req); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *quoteService) DeleteQuote(ownerEmail string, id uuid.UUID) error {
	if _, err := s.quoteRepo.FindByID(ownerEmail, id); err != nil {
		return ErrQuoteNotFound
	}
	return s.quoteRepo.Delete(ownerEmail, id, ownerEmail)
}

func (s *quoteService) GetQuotes(ownerEmail string) ([]model.Quote, error) {
	return s.quoteRepo.FindAll(ownerEmail)
}

// ConvertToInvoice re-emits the quote as a sale. Items and totals are
// copied verbatim; profit is stamped 0 because the cost basis is not
// re-derived from current inventory cost prices, and the payment
// method is "N/A" since no payment was taken through the sales form.
func (s *quoteService) ConvertToInvoice(ownerEmail string, id uuid.UUID) (*model.SaleTransaction, error) {
	quote, err := s.quoteRepo.FindByID(ownerEmail, id)
	if err != nil {
		return nil, ErrQuoteNotFound
	}

	items := make([]model.SaleItem, len(quote.Items))
	for i, qi := range quote.Items {
		items[i] = model.SaleItem{LineItem: qi.LineItem}
	}

	sale := &model.SaleTransaction{
		OwnerEmail:    ownerEmail,
		Items:         items,
		Subtotal:      quote.Subtotal,
		TaxAmount:     quote.TaxAmount,
		TotalAmount:   quote.TotalAmount,
		Profit:        0,
		Timestamp:     time.Now(),
		CustomerName:  quote.CustomerName,
		ContactNumber: quote.ContactNumber,
		CustomerEmail: quote.CustomerEmail,
		CarModel:      quote.CarModel,
		VIN:           "N/A",
		Odometer:      "N/A",
		PaymentMethod: model.PaymentNotApplicable,
		HSTRate:       quote.TaxRateApplied,
		Notes:         quote.Notes,
	}
	sale.CreatedBy = ownerEmail
	sale.UpdatedBy = ownerEmail

	err = s.db.Transaction(func(tx *gorm.DB) error {
		invoiceNumber, err := s.userRepo.NextInvoiceNumber(tx, ownerEmail)
		if err != nil {
			return err
		}
		sale.InvoiceNumber = invoiceNumber
		return s.saleRepo.Create(tx, sale)
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish("sale_recorded", map[string]interface{}{
		"sale_id":        sale.ID,
		"invoice_number": sale.InvoiceNumber,
		"total_amount":   sale.TotalAmount,
		"converted_from": quote.ID,
	})
	return sale, nil
}
