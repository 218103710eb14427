package pricing

import (
	"testing"

	"catering_backoffice/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestCalculateTax(t *testing.T) {
	t.Run("standard rates", func(t *testing.T) {
		b := CalculateTax(10000, false)
		require.Equal(t, int64(1000), b.HospitalityTax)
		require.Equal(t, int64(600), b.ServiceTax)
		require.Equal(t, int64(1600), b.TaxAmount)
		require.Equal(t, int64(11600), b.TotalAmount)
		require.False(t, b.IsExempt)
	})

	t.Run("government is exempt", func(t *testing.T) {
		b := CalculateTax(10000, true)
		require.Equal(t, TaxBreakdown{Subtotal: 10000, TotalAmount: 10000, IsExempt: true}, b)
	})

	t.Run("rounds each component half up", func(t *testing.T) {
		// 10% of 5 = 0.5 -> 1, 6% of 5 = 0.3 -> 0
		b := CalculateTax(5, false)
		require.Equal(t, int64(1), b.HospitalityTax)
		require.Equal(t, int64(0), b.ServiceTax)

		// 6% of 25 = 1.5 -> 2
		b = CalculateTax(25, false)
		require.Equal(t, int64(3), b.HospitalityTax)
		require.Equal(t, int64(2), b.ServiceTax)
	})

	t.Run("negative subtotal rounds away from zero", func(t *testing.T) {
		b := CalculateTax(-25, false)
		require.Equal(t, int64(-3), b.HospitalityTax)
		require.Equal(t, int64(-2), b.ServiceTax)
		require.Equal(t, int64(-30), b.TotalAmount)
	})
}

func TestCalculateTax_TotalIsSubtotalPlusTax(t *testing.T) {
	for subtotal := int64(-2000); subtotal <= 20000; subtotal += 7 {
		for _, gov := range []bool{false, true} {
			b := CalculateTax(subtotal, gov)
			require.Equal(t, subtotal+b.TaxAmount, b.TotalAmount)
			require.Equal(t, b.HospitalityTax+b.ServiceTax, b.TaxAmount)
			if gov {
				require.Zero(t, b.TaxAmount)
			}
		}
	}
}

func TestNewCalculator(t *testing.T) {
	c := NewCalculator(0, -1)
	require.Equal(t, DefaultHospitalityBPS, c.HospitalityBPS)
	require.Equal(t, DefaultServiceBPS, c.ServiceBPS)

	c = NewCalculator(800, 500)
	b := c.Calculate(10000, false)
	require.Equal(t, int64(1300), b.TaxAmount)
}

func TestRecalculate(t *testing.T) {
	inv := &entities.Invoice{
		GuestCount: 50,
		LineItems: []entities.LineItem{
			{ID: "a", Unit: entities.LineUnitPerGuest, Quantity: 50, UnitPrice: 2500, TotalPrice: 1},
			{ID: "b", Unit: entities.LineUnitFlat, Quantity: 1, UnitPrice: 15000},
		},
	}

	b := defaultCalculator.Recalculate(inv)

	require.Equal(t, int64(125000), inv.LineItems[0].TotalPrice)
	require.Equal(t, int64(140000), inv.Subtotal)
	require.Equal(t, int64(14000), inv.HospitalityTax)
	require.Equal(t, int64(8400), inv.ServiceTax)
	require.Equal(t, int64(22400), inv.TaxAmount)
	require.Equal(t, int64(162400), inv.TotalAmount)
	require.Equal(t, inv.TotalAmount, b.TotalAmount)
}

func TestRecalculate_AdjustmentIsNotTaxed(t *testing.T) {
	inv := &entities.Invoice{
		LineItems: []entities.LineItem{
			{ID: "a", Unit: entities.LineUnitEach, Quantity: 2, UnitPrice: 5000},
		},
	}
	defaultCalculator.Recalculate(inv)
	before := inv.TotalAmount

	inv.LineItems = append(inv.LineItems, AdjustmentLine("adj", "Change request", 500))
	defaultCalculator.Recalculate(inv)

	require.Equal(t, before+500, inv.TotalAmount)
	require.Equal(t, inv.Subtotal+inv.TaxAmount, inv.TotalAmount)
}

func TestApplyGuestCount(t *testing.T) {
	items := []entities.LineItem{
		{ID: "a", Unit: entities.LineUnitPerGuest, Quantity: 50, UnitPrice: 2500},
		{ID: "b", Unit: entities.LineUnitEach, Quantity: 3, UnitPrice: 1000, TotalPrice: 3000},
	}

	ApplyGuestCount(items, 80)

	require.Equal(t, int64(80), items[0].Quantity)
	require.Equal(t, int64(200000), items[0].TotalPrice)
	require.Equal(t, int64(3), items[1].Quantity)
	require.Equal(t, int64(3000), items[1].TotalPrice)
}
