package service

import (
	"testing"

	"go-autoshop/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := []model.LineItem{
		{Name: "Winter Tire", Quantity: 4, UnitPrice: 10.50, CostPrice: 6.00},
		{Name: "Oil Filter", Quantity: 1, UnitPrice: 10.00, CostPrice: 4.00},
	}

	t.Run("with tax", func(t *testing.T) {
		totals := ComputeTotals(items, true, HSTRate)
		assert.InDelta(t, 52.00, totals.Subtotal, 0.001)
		assert.InDelta(t, 6.76, totals.TaxAmount, 0.001)
		assert.InDelta(t, 58.76, totals.TotalAmount, 0.001)
	})

	t.Run("without tax", func(t *testing.T) {
		totals := ComputeTotals(items, false, HSTRate)
		assert.InDelta(t, 52.00, totals.Subtotal, 0.001)
		assert.Zero(t, totals.TaxAmount)
		assert.InDelta(t, 52.00, totals.TotalAmount, 0.001)
	})

	t.Run("empty cart", func(t *testing.T) {
		totals := ComputeTotals(nil, true, HSTRate)
		assert.Zero(t, totals.Subtotal)
		assert.Zero(t, totals.TaxAmount)
		assert.Zero(t, totals.TotalAmount)
	})
}

func TestTotalProfit(t *testing.T) {
	items := []model.LineItem{
		{Name: "Winter Tire", Quantity: 4, UnitPrice: 10.50, CostPrice: 6.00},
		{Name: "Oil Filter", Quantity: 1, UnitPrice: 10.00, CostPrice: 4.00},
	}
	// 4 x 4.50 + 1 x 6.00
	assert.InDelta(t, 24.00, TotalProfit(items), 0.001)
}

func TestNormalizeLineItem(t *testing.T) {
	item := NormalizeLineItem(model.LineItem{
		Name:      "Rim",
		Quantity:  0,
		UnitPrice: -5,
		CostPrice: -2,
	})
	assert.Equal(t, 1, item.Quantity)
	assert.Zero(t, item.UnitPrice)
	assert.Zero(t, item.CostPrice)

	// In-range values pass through untouched.
	item = NormalizeLineItem(model.LineItem{Name: "Rim", Quantity: 3, UnitPrice: 80, CostPrice: 50})
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, 80.0, item.UnitPrice)
	assert.Equal(t, 50.0, item.CostPrice)
}

func TestApplyItemTotal(t *testing.T) {
	t.Run("back-solves unit price", func(t *testing.T) {
		item := ApplyItemTotal(model.LineItem{Name: "Tire", Quantity: 4, UnitPrice: 100}, 500)
		assert.InDelta(t, 125.0, item.UnitPrice, 0.001)
		assert.InDelta(t, 500.0, item.Total(), 0.001)
	})

	t.Run("zero quantity takes the total as unit price", func(t *testing.T) {
		item := ApplyItemTotal(model.LineItem{Name: "Tire", Quantity: 0}, 75)
		assert.InDelta(t, 75.0, item.UnitPrice, 0.001)
	})

	t.Run("negative edit coerced to zero", func(t *testing.T) {
		item := ApplyItemTotal(model.LineItem{Name: "Tire", Quantity: 2, UnitPrice: 40}, -10)
		assert.Zero(t, item.UnitPrice)
	})
}
