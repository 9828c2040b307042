package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myca/taxgo/internal/domain"
)

// Engine runs the single-regime pipeline: normalize deductions, derive
// taxable income, apply slab rates, then rebate and cess. It holds no
// state, so one Engine value can serve any number of goroutines.
type Engine struct{}

// NewEngine creates a computation engine.
func NewEngine() *Engine {
	return &Engine{}
}

var hundred = decimal.NewFromInt(100)

// ComputeRegime produces the full result for one regime's rule table.
func (e *Engine) ComputeRegime(input domain.TaxInput, table domain.RegimeRuleTable) (domain.RegimeResult, error) {
	if err := input.Validate(); err != nil {
		return domain.RegimeResult{}, err
	}

	deductions, err := NormalizeDeductions(input, table)
	if err != nil {
		return domain.RegimeResult{}, err
	}

	taxable := TaxableIncome(input.GrossAnnualIncome, deductions)
	slabTax := ComputeSlabTax(taxable, table.Slabs)
	adjusted := ApplyRebateAndCess(slabTax, taxable, table)

	result := domain.RegimeResult{
		Regime:          table.Regime,
		FiscalYear:      table.FiscalYear,
		GrossIncome:     input.GrossAnnualIncome,
		TotalDeductions: deductions.Total,
		TaxableIncome:   taxable,
		SlabTax:         slabTax,
		RebateApplied:   adjusted.RebateApplied,
		CessAmount:      adjusted.CessAmount,
		TotalTaxPayable: adjusted.TotalTaxPayable,
		EffectiveRate:   decimal.Zero,
	}

	if input.GrossAnnualIncome.GreaterThan(decimal.Zero) {
		result.EffectiveRate = adjusted.TotalTaxPayable.
			Div(input.GrossAnnualIncome).
			Mul(hundred).
			Round(2)
	}

	return result, nil
}
