package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxInput is one taxpayer's annual figures: gross income, itemized
// deduction claims, and the fiscal year selecting the rule tables.
// Inputs are constructed per request and discarded after computation.
type TaxInput struct {
	GrossAnnualIncome decimal.Decimal                       `yaml:"gross_annual_income" json:"grossAnnualIncome"`
	Deductions        map[DeductionCategory]decimal.Decimal `yaml:"deductions" json:"deductions"`
	FiscalYear        string                                `yaml:"fiscal_year" json:"fiscalYear"`
}

// Validate checks the non-negativity invariants on the input amounts.
func (ti TaxInput) Validate() error {
	if ti.GrossAnnualIncome.IsNegative() {
		return fmt.Errorf("%w: gross annual income cannot be negative", ErrInvalidInput)
	}
	for category, amount := range ti.Deductions {
		if amount.IsNegative() {
			return fmt.Errorf("%w: deduction %s cannot be negative", ErrInvalidInput, category)
		}
	}
	if ti.FiscalYear == "" {
		return fmt.Errorf("%w: fiscal year is required", ErrInvalidInput)
	}
	return nil
}

// NormalizedDeductions holds per-category amounts after cap clipping,
// plus the total (including the standard deduction) subtracted from
// gross income.
type NormalizedDeductions struct {
	ByCategory        map[DeductionCategory]decimal.Decimal `json:"byCategory"`
	StandardDeduction decimal.Decimal                       `json:"standardDeduction"`
	Total             decimal.Decimal                       `json:"total"`
}
