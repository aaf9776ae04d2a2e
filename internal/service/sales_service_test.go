package service

import (
	"testing"

	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSalesFixture(t *testing.T) (*gorm.DB, SalesService) {
	t.Helper()
	db := newTestDB(t)
	seedOwner(t, db)

	svc := NewSalesService(
		repository.NewSaleRepo(db),
		repository.NewInventoryRepo(db),
		repository.NewCustomerRepo(db),
		repository.NewUserRepo(db),
		db,
		nil,
	)
	return db, svc
}

func seedItem(t *testing.T, db *gorm.DB, name, category string, stock, threshold int) *model.InventoryItem {
	t.Helper()
	item := &model.InventoryItem{
		OwnerEmail:        testOwner,
		Name:              name,
		Category:          category,
		Stock:             stock,
		CostPrice:         50,
		RetailPrice:       120,
		LowStockThreshold: threshold,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestFinalizeSaleRejectsEmptyCart(t *testing.T) {
	db, svc := newSalesFixture(t)

	_, err := svc.FinalizeSale(testOwner, &FinalizeSaleRequest{PaymentMethod: model.PaymentCash})
	assert.ErrorIs(t, err, ErrEmptySale)

	var count int64
	db.Model(&model.SaleTransaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestFinalizeSaleRejectsUnknownPayment(t *testing.T) {
	_, svc := newSalesFixture(t)

	_, err := svc.FinalizeSale(testOwner, &FinalizeSaleRequest{
		Items:         []model.LineItem{{Name: "Tire", Quantity: 1, UnitPrice: 100}},
		PaymentMethod: "cheque",
	})
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestFinalizeSaleAssignsSequentialInvoiceNumbers(t *testing.T) {
	_, svc := newSalesFixture(t)

	req := func() *FinalizeSaleRequest {
		return &FinalizeSaleRequest{
			Items:         []model.LineItem{{Name: "Oil Change", Quantity: 1, UnitPrice: 60, CostPrice: 20}},
			PaymentMethod: model.PaymentCash,
		}
	}

	first, err := svc.FinalizeSale(testOwner, req())
	require.NoError(t, err)
	second, err := svc.FinalizeSale(testOwner, req())
	require.NoError(t, err)

	assert.Equal(t, int64(1000), first.InvoiceNumber)
	assert.Equal(t, int64(1001), second.InvoiceNumber)
}

func TestFinalizeSaleDecrementsStock(t *testing.T) {
	db, svc := newSalesFixture(t)
	tire := seedItem(t, db, "All Season 225/65R17", "Tires", 10, 2)
	service := seedItem(t, db, "Tire Installation", model.CategoryServices, model.ServiceStockSentinel, 0)

	_, err := svc.FinalizeSale(testOwner, &FinalizeSaleRequest{
		Items: []model.LineItem{
			{InventoryItemID: &tire.ID, Name: tire.Name, Quantity: 4, UnitPrice: 120, CostPrice: 50},
			{InventoryItemID: &service.ID, Name: service.Name, Quantity: 1, UnitPrice: 80},
			{Name: "Shop Supplies", Quantity: 1, UnitPrice: 5}, // no inventory link
		},
		PaymentMethod: model.PaymentCard,
	})
	require.NoError(t, err)

	var got model.InventoryItem
	require.NoError(t, db.First(&got, "id = ?", tire.ID).Error)
	assert.Equal(t, 6, got.Stock)

	// Services never lose stock.
	require.NoError(t, db.First(&got, "id = ?", service.ID).Error)
	assert.Equal(t, model.ServiceStockSentinel, got.Stock)
}

func TestFinalizeSaleClampsStockAtZero(t *testing.T) {
	db, svc := newSalesFixture(t)
	tire := seedItem(t, db, "Used Tire", "Used Tires", 2, 0)

	_, err := svc.FinalizeSale(testOwner, &FinalizeSaleRequest{
		Items:         []model.LineItem{{InventoryItemID: &tire.ID, Name: tire.Name, Quantity: 5, UnitPrice: 40}},
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	var got model.InventoryItem
	require.NoError(t, db.First(&got, "id = ?", tire.ID).Error)
	assert.Zero(t, got.Stock)
}

func TestFinalizeSaleSurvivesDeletedInventoryLink(t *testing.T) {
	db, svc := newSalesFixture(t)
	tire := seedItem(t, db, "Rim 17in", "Rims", 8, 0)
	require.NoError(t, db.Delete(&model.InventoryItem{}, "id = ?", tire.ID).Error)

	sale, err := svc.FinalizeSale(testOwner, &FinalizeSaleRequest{
		Items:         []model.LineItem{{InventoryItemID: &tire.ID, Name: tire.Name, Quantity: 1, UnitPrice: 150}},
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), sale.InvoiceNumber)
}

func TestFinalizeSaleFillsBlankCustomerFields(t *testing.T) {
	_, svc := newSalesFixture(t)

	sale, err := svc.FinalizeSale(testOwner, &FinalizeSaleRequest{
		Items:         []model.LineItem{{Name: "Wiper Blades", Quantity: 2, UnitPrice: 15, CostPrice: 7}},
		CustomerName:  "  ",
		PaymentMethod: model.PaymentCash,
		ApplyTax:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "N/A", sale.CustomerName)
	assert.Equal(t, "N/A", sale.ContactNumber)
	assert.Equal(t, "N/A", sale.VIN)
	assert.InDelta(t, 30.00, sale.Subtotal, 0.001)
	assert.InDelta(t, 3.90, sale.TaxAmount, 0.001)
	assert.InDelta(t, 16.00, sale.Profit, 0.001)
	assert.Equal(t, HSTRate, sale.HSTRate)
}

func TestFinalizeSaleUpsertsCustomer(t *testing.T) {
	db, svc := newSalesFixture(t)

	_, err := svc.FinalizeSale(testOwner, &FinalizeSaleRequest{
		Items:         []model.LineItem{{Name: "Oil Change", Quantity: 1, UnitPrice: 60}},
		CustomerName:  "Dana Reyes",
		ContactNumber: "555-0101",
		CarModel:      "Civic 2019",
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	// Second sale from the same contact fills in new fields without
	// blanking the ones already on file.
	_, err = svc.FinalizeSale(testOwner, &FinalizeSaleRequest{
		Items:         []model.LineItem{{Name: "Brake Pads", Quantity: 1, UnitPrice: 90}},
		ContactNumber: "555-0101",
		VIN:           "2HGFC2F59KH501234",
		PaymentMethod: model.PaymentCard,
	})
	require.NoError(t, err)

	var customer model.Customer
	require.NoError(t, db.First(&customer, "owner_email = ? AND contact_number = ?", testOwner, "555-0101").Error)
	assert.Equal(t, "Dana Reyes", customer.CustomerName)
	assert.Equal(t, "Civic 2019", customer.CarModel)
	assert.Equal(t, "2HGFC2F59KH501234", customer.VIN)

	var count int64
	db.Model(&model.Customer{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestFinalizeSaleSkipsCustomerWithoutContact(t *testing.T) {
	db, svc := newSalesFixture(t)

	_, err := svc.FinalizeSale(testOwner, &FinalizeSaleRequest{
		Items:         []model.LineItem{{Name: "Oil Change", Quantity: 1, UnitPrice: 60}},
		CustomerName:  "Walk-in",
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	var count int64
	db.Model(&model.Customer{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteSale(t *testing.T) {
	_, svc := newSalesFixture(t)

	sale, err := svc.FinalizeSale(testOwner, &FinalizeSaleRequest{
		Items:         []model.LineItem{{Name: "Oil Change", Quantity: 1, UnitPrice: 60}},
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSale(testOwner, sale.ID))

	sales, err := svc.GetSales(testOwner)
	require.NoError(t, err)
	assert.Empty(t, sales)

	assert.ErrorIs(t, svc.DeleteSale(testOwner, sale.ID), ErrSaleNotFound)
}
