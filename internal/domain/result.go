package domain

import (
	"github.com/shopspring/decimal"
)

// RegimeResult is the outcome of running the full pipeline under a
// single regime's rule table. Produced fresh per computation, never
// persisted.
type RegimeResult struct {
	Regime          Regime          `json:"regime"`
	FiscalYear      string          `json:"fiscalYear"`
	GrossIncome     decimal.Decimal `json:"grossIncome"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TaxableIncome   decimal.Decimal `json:"taxableIncome"`
	SlabTax         decimal.Decimal `json:"slabTax"`
	RebateApplied   decimal.Decimal `json:"rebateApplied"`
	CessAmount      decimal.Decimal `json:"cessAmount"`
	TotalTaxPayable decimal.Decimal `json:"totalTaxPayable"`
	EffectiveRate   decimal.Decimal `json:"effectiveRate"`
}

// ComparisonResult pairs the two regime results with a recommendation.
// Savings is the absolute gap between the two liabilities.
type ComparisonResult struct {
	OldRegime         RegimeResult    `json:"oldRegime"`
	NewRegime         RegimeResult    `json:"newRegime"`
	RecommendedRegime Regime          `json:"recommendedRegime"`
	Savings           decimal.Decimal `json:"savings"`
}

// RoundRupee rounds an amount to the whole rupee, half up. Every
// rounding step in the engine goes through this helper so the
// round-once-at-the-end rule cannot drift between call sites.
func RoundRupee(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}
