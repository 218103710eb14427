package pricing

import "catering_backoffice/internal/domain/entities"

func LineTotal(quantity, unitPrice int64) int64 {
	return quantity * unitPrice
}

// Subtotal sums the stored line totals.
func Subtotal(items []entities.LineItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.TotalPrice
	}
	return sum
}

// TaxableBase sums the line totals that are not tax exempt.
func TaxableBase(items []entities.LineItem) int64 {
	var sum int64
	for _, it := range items {
		if !it.TaxExempt {
			sum += it.TotalPrice
		}
	}
	return sum
}

// Recalculate recomputes every line total, the subtotal, both taxes and the
// total of the invoice in place.
func (c Calculator) Recalculate(inv *entities.Invoice) TaxBreakdown {
	for i := range inv.LineItems {
		inv.LineItems[i].TotalPrice = LineTotal(inv.LineItems[i].Quantity, inv.LineItems[i].UnitPrice)
	}

	b := c.CalculateWithBase(Subtotal(inv.LineItems), TaxableBase(inv.LineItems), inv.IsGovernmentContract)

	inv.Subtotal = b.Subtotal
	inv.HospitalityTax = b.HospitalityTax
	inv.ServiceTax = b.ServiceTax
	inv.TaxAmount = b.TaxAmount
	inv.TotalAmount = b.TotalAmount
	return b
}

// ApplyGuestCount sets the quantity of per-guest lines to guests and refreshes
// their totals. Other lines are left untouched.
func ApplyGuestCount(items []entities.LineItem, guests int) {
	for i := range items {
		if items[i].Unit != entities.LineUnitPerGuest {
			continue
		}
		items[i].Quantity = int64(guests)
		items[i].TotalPrice = LineTotal(items[i].Quantity, items[i].UnitPrice)
	}
}

// AdjustmentLine builds a flat, tax-exempt line carrying amount cents.
func AdjustmentLine(id, description string, amount int64) entities.LineItem {
	return entities.LineItem{
		ID:          id,
		Description: description,
		Category:    entities.LineCategoryAdjustment,
		Unit:        entities.LineUnitFlat,
		Quantity:    1,
		UnitPrice:   amount,
		TotalPrice:  amount,
		TaxExempt:   true,
	}
}
