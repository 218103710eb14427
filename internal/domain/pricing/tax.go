// Package pricing computes invoice line totals, subtotals and taxes on integer
// cents.
package pricing

const (
	DefaultHospitalityBPS int64 = 1000
	DefaultServiceBPS     int64 = 600

	bpsDenominator int64 = 10000
)

// TaxBreakdown is the result of a tax computation. TotalAmount is always
// Subtotal + TaxAmount.
type TaxBreakdown struct {
	Subtotal       int64 `json:"subtotal"`
	HospitalityTax int64 `json:"hospitality_tax"`
	ServiceTax     int64 `json:"service_tax"`
	TaxAmount      int64 `json:"tax_amount"`
	TotalAmount    int64 `json:"total_amount"`
	IsExempt       bool  `json:"is_exempt"`
}

// Calculator applies hospitality and service tax rates expressed in basis points.
type Calculator struct {
	HospitalityBPS int64
	ServiceBPS     int64
}

// NewCalculator returns a calculator; non-positive rates fall back to the defaults.
func NewCalculator(hospitalityBPS, serviceBPS int64) Calculator {
	if hospitalityBPS <= 0 {
		hospitalityBPS = DefaultHospitalityBPS
	}
	if serviceBPS <= 0 {
		serviceBPS = DefaultServiceBPS
	}
	return Calculator{HospitalityBPS: hospitalityBPS, ServiceBPS: serviceBPS}
}

var defaultCalculator = NewCalculator(DefaultHospitalityBPS, DefaultServiceBPS)

// CalculateTax uses the default rates (10% hospitality, 6% service).
func CalculateTax(subtotal int64, isGovernment bool) TaxBreakdown {
	return defaultCalculator.Calculate(subtotal, isGovernment)
}

// Calculate taxes the whole subtotal.
func (c Calculator) Calculate(subtotal int64, isGovernment bool) TaxBreakdown {
	return c.CalculateWithBase(subtotal, subtotal, isGovernment)
}

// CalculateWithBase taxes taxableBase and adds the tax to subtotal. Government
// contracts are exempt.
func (c Calculator) CalculateWithBase(subtotal, taxableBase int64, isGovernment bool) TaxBreakdown {
	if isGovernment {
		return TaxBreakdown{
			Subtotal:    subtotal,
			TotalAmount: subtotal,
			IsExempt:    true,
		}
	}

	hospitality := applyBPS(taxableBase, c.HospitalityBPS)
	service := applyBPS(taxableBase, c.ServiceBPS)
	tax := hospitality + service

	return TaxBreakdown{
		Subtotal:       subtotal,
		HospitalityTax: hospitality,
		ServiceTax:     service,
		TaxAmount:      tax,
		TotalAmount:    subtotal + tax,
	}
}

// applyBPS returns amount*bps/10000 rounded half away from zero.
func applyBPS(amount, bps int64) int64 {
	n := amount * bps
	q := n / bpsDenominator
	r := n % bpsDenominator
	if r < 0 {
		r = -r
	}
	if r*2 >= bpsDenominator {
		if n < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}
