package domain

import (
	"github.com/shopspring/decimal"
)

// Regime identifies one of the two parallel rule sets of the Indian
// income tax code.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// DeductionCategory names an itemized deduction head. The modeled heads
// mirror the common ITR inputs: Section 80C investments, Section 80D
// health premiums, HRA exemption, and a catch-all for everything else.
type DeductionCategory string

const (
	Deduction80C   DeductionCategory = "80c"
	Deduction80D   DeductionCategory = "80d"
	DeductionHRA   DeductionCategory = "hra"
	DeductionOther DeductionCategory = "other"
)

// NoCap marks a deduction category that is allowed without a monetary
// ceiling (HRA and "other" under the old regime). A zero or absent cap
// still means the category is disallowed entirely.
var NoCap = decimal.NewFromInt(-1)

// Slab is a single income bracket taxed at its own marginal rate. Lower
// is inclusive, Upper exclusive. The final slab of a table is unbounded
// and carries a zero Upper.
type Slab struct {
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Upper decimal.Decimal `yaml:"upper" json:"upper"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the slab has no upper bound.
func (s Slab) Unbounded() bool {
	return s.Upper.IsZero()
}

// RegimeRuleTable holds the complete rule set for one regime in one
// fiscal year: slab brackets, the standard deduction, per-category
// deduction ceilings, the Section 87A rebate, and the health and
// education cess. Tables are immutable after registration.
type RegimeRuleTable struct {
	Regime                Regime                                `yaml:"regime" json:"regime"`
	FiscalYear            string                                `yaml:"fiscal_year" json:"fiscalYear"`
	Slabs                 []Slab                                `yaml:"slabs" json:"slabs"`
	StandardDeduction     decimal.Decimal                       `yaml:"standard_deduction" json:"standardDeduction"`
	DeductionCaps         map[DeductionCategory]decimal.Decimal `yaml:"deduction_caps" json:"deductionCaps"`
	RebateIncomeThreshold decimal.Decimal                       `yaml:"rebate_income_threshold" json:"rebateIncomeThreshold"`
	RebateMaxAmount       decimal.Decimal                       `yaml:"rebate_max_amount" json:"rebateMaxAmount"`
	CessRate              decimal.Decimal                       `yaml:"cess_rate" json:"cessRate"`
}
