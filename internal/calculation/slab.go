package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myca/taxgo/internal/domain"
)

// ComputeSlabTax applies the progressive marginal rates of a slab
// schedule to taxable income. Each slab taxes the portion of income in
// [Lower, Upper); the final slab is open-ended. The sum is rounded to
// the whole rupee exactly once at the end; rounding per slab would
// accumulate drift across brackets.
func ComputeSlabTax(taxableIncome decimal.Decimal, slabs []domain.Slab) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, slab := range slabs {
		if taxableIncome.LessThanOrEqual(slab.Lower) {
			break
		}
		upper := taxableIncome
		if !slab.Unbounded() {
			upper = decimal.Min(taxableIncome, slab.Upper)
		}
		portion := upper.Sub(slab.Lower)
		if portion.GreaterThan(decimal.Zero) {
			total = total.Add(portion.Mul(slab.Rate))
		}
	}

	return domain.RoundRupee(total)
}

// TaxableIncome subtracts normalized deductions from gross income,
// floored at zero.
func TaxableIncome(grossIncome decimal.Decimal, deductions domain.NormalizedDeductions) decimal.Decimal {
	taxable := grossIncome.Sub(deductions.Total)
	if taxable.IsNegative() {
		return decimal.Zero
	}
	return taxable
}
