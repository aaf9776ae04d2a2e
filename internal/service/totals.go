package service

import "go-autoshop/internal/model"

// HSTRate is the harmonized sales tax rate applied when tax is
// enabled on a sale or quote (13%).
const HSTRate = 0.13

// Totals is the reactive summary of an in-progress sale or quote.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	TaxAmount   float64 `json:"tax_amount"`
	TotalAmount float64 `json:"total_amount"`
}

// ComputeTotals derives subtotal, tax, and grand total from the line
// items. Pure; persistence never happens here.
func ComputeTotals(items []model.LineItem, taxEnabled bool, taxRate float64) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.Total()
	}
	if taxEnabled {
		t.TaxAmount = t.Subtotal * taxRate
	}
	t.TotalAmount = t.Subtotal + t.TaxAmount
	return t
}

// TotalProfit sums (unitPrice - costPrice) x quantity over the items.
func TotalProfit(items []model.LineItem) float64 {
	var profit float64
	for _, item := range items {
		profit += item.Profit()
	}
	return profit
}

// NormalizeLineItem coerces out-of-range input the way the sales form
// does on blur: quantity below 1 becomes 1, negative prices become 0.
func NormalizeLineItem(item model.LineItem) model.LineItem {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.UnitPrice < 0 {
		item.UnitPrice = 0
	}
	if item.CostPrice < 0 {
		item.CostPrice = 0
	}
	return item
}

// ApplyItemTotal back-solves the unit price from an edited line total:
// unitPrice = total/quantity when quantity > 0, otherwise the edited
// total becomes the unit price. Negative edits are coerced to 0.
func ApplyItemTotal(item model.LineItem, editedTotal float64) model.LineItem {
	if editedTotal < 0 {
		editedTotal = 0
	}
	if item.Quantity > 0 {
		item.UnitPrice = editedTotal / float64(item.Quantity)
	} else {
		item.UnitPrice = editedTotal
	}
	return item
}
