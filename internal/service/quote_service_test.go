package service

import (
	"testing"

	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuoteFixture(t *testing.T) (*gorm.DB, QuoteService) {
	t.Helper()
	db := newTestDB(t)
	seedOwner(t, db)

	svc := NewQuoteService(
		repository.NewQuoteRepo(db),
		repository.NewSaleRepo(db),
		repository.NewCustomerRepo(db),
		repository.NewUserRepo(db),
		db,
		nil,
	)
	return db, svc
}

func quoteReq() *SaveQuoteRequest {
	return &SaveQuoteRequest{
		Items: []model.LineItem{
			{Name: "Winter Tires x4", Quantity: 4, UnitPrice: 130, CostPrice: 80},
			{Name: "Installation", Quantity: 1, UnitPrice: 60},
		},
		CustomerName:  "Sam Ortiz",
		ContactNumber: "555-0199",
		ApplyTax:      true,
	}
}

func TestSaveQuoteRejectsEmptyCart(t *testing.T) {
	_, svc := newQuoteFixture(t)

	_, err := svc.SaveQuote(testOwner, &SaveQuoteRequest{})
	assert.ErrorIs(t, err, ErrEmptyQuote)
}

func TestSaveQuoteComputesTotalsAndUpsertsCustomer(t *testing.T) {
	db, svc := newQuoteFixture(t)

	quote, err := svc.SaveQuote(testOwner, quoteReq())
	require.NoError(t, err)

	assert.InDelta(t, 580.00, quote.Subtotal, 0.001)
	assert.InDelta(t, 75.40, quote.TaxAmount, 0.001)
	assert.InDelta(t, 655.40, quote.TotalAmount, 0.001)
	assert.Equal(t, HSTRate, quote.TaxRateApplied)
	assert.Len(t, quote.Items, 2)

	var customer model.Customer
	require.NoError(t, db.First(&customer, "owner_email = ? AND contact_number = ?", testOwner, "555-0199").Error)
	assert.Equal(t, "Sam Ortiz", customer.CustomerName)
}

func TestUpdateQuoteReplacesInPlace(t *testing.T) {
	db, svc := newQuoteFixture(t)

	quote, err := svc.SaveQuote(testOwner, quoteReq())
	require.NoError(t, err)

	updated, err := svc.UpdateQuote(testOwner, quote.ID, &SaveQuoteRequest{
		Items:         []model.LineItem{{Name: "Summer Tires x4", Quantity: 4, UnitPrice: 110, CostPrice: 70}},
		CustomerName:  "Sam Ortiz",
		ContactNumber: "555-0199",
	})
	require.NoError(t, err)

	assert.Equal(t, quote.ID, updated.ID)
	assert.InDelta(t, 440.00, updated.TotalAmount, 0.001)
	assert.Zero(t, updated.TaxRateApplied)

	// The old line items are gone, not orphaned.
	var itemCount int64
	db.Model(&model.QuoteItem{}).Where("quote_id = ?", quote.ID).Count(&itemCount)
	assert.EqualValues(t, 1, itemCount)

	var quoteCount int64
	db.Model(&model.Quote{}).Count(&quoteCount)
	assert.EqualValues(t, 1, quoteCount)
}

func TestDeleteQuote(t *testing.T) {
	_, svc := newQuoteFixture(t)

	quote, err := svc.SaveQuote(testOwner, quoteReq())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuote(testOwner, quote.ID))

	quotes, err := svc.GetQuotes(testOwner)
	require.NoError(t, err)
	assert.Empty(t, quotes)

	assert.ErrorIs(t, svc.DeleteQuote(testOwner, quote.ID), ErrQuoteNotFound)
}

func TestConvertToInvoice(t *testing.T) {
	_, svc := newQuoteFixture(t)

	quote, err := svc.SaveQuote(testOwner, quoteReq())
	require.NoError(t, err)

	sale, err := svc.ConvertToInvoice(testOwner, quote.ID)
	require.NoError(t, err)

	// Totals carry over verbatim; the quote's cost basis is not
	// re-derived, so profit is recorded as zero.
	assert.InDelta(t, quote.TotalAmount, sale.TotalAmount, 0.001)
	assert.InDelta(t, quote.Subtotal, sale.Subtotal, 0.001)
	assert.Zero(t, sale.Profit)
	assert.Equal(t, model.PaymentNotApplicable, sale.PaymentMethod)
	assert.Equal(t, "N/A", sale.VIN)
	assert.Equal(t, "N/A", sale.Odometer)
	assert.Equal(t, quote.TaxRateApplied, sale.HSTRate)
	assert.Equal(t, int64(1000), sale.InvoiceNumber)
	assert.Len(t, sale.Items, 2)
}

func TestConvertToInvoiceUnknownQuote(t *testing.T) {
	_, svc := newQuoteFixture(t)

	_, err := svc.ConvertToInvoice(testOwner, uuid.New())
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}
