package rules

import (
	"github.com/shopspring/decimal"

	"github.com/myca/taxgo/internal/domain"
)

// Built-in rule tables for the fiscal years the engine ships with.
// Figures follow the published slab schedules and Section 87A / cess
// rules for each year; the old regime caps model 80C and 80D ceilings
// with HRA and other deductions allowed uncapped.

// NewOldRegimeTable2425 returns the FY 2024-25 old regime table.
func NewOldRegimeTable2425() domain.RegimeRuleTable {
	return domain.RegimeRuleTable{
		Regime:     domain.RegimeOld,
		FiscalYear: "2024-25",
		Slabs: []domain.Slab{
			{Lower: decimal.Zero, Upper: decimal.NewFromInt(250000), Rate: decimal.Zero},
			{Lower: decimal.NewFromInt(250000), Upper: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05)},
			{Lower: decimal.NewFromInt(500000), Upper: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.20)},
			{Lower: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.30)},
		},
		StandardDeduction: decimal.NewFromInt(50000),
		DeductionCaps: map[domain.DeductionCategory]decimal.Decimal{
			domain.Deduction80C:   decimal.NewFromInt(150000),
			domain.Deduction80D:   decimal.NewFromInt(75000),
			domain.DeductionHRA:   domain.NoCap,
			domain.DeductionOther: domain.NoCap,
		},
		RebateIncomeThreshold: decimal.NewFromInt(500000),
		RebateMaxAmount:       decimal.NewFromInt(12500),
		CessRate:              decimal.NewFromFloat(0.04),
	}
}

// NewNewRegimeTable2425 returns the FY 2024-25 new regime table. All
// itemized deductions are suppressed; only the standard deduction
// applies.
func NewNewRegimeTable2425() domain.RegimeRuleTable {
	return domain.RegimeRuleTable{
		Regime:     domain.RegimeNew,
		FiscalYear: "2024-25",
		Slabs: []domain.Slab{
			{Lower: decimal.Zero, Upper: decimal.NewFromInt(300000), Rate: decimal.Zero},
			{Lower: decimal.NewFromInt(300000), Upper: decimal.NewFromInt(700000), Rate: decimal.NewFromFloat(0.05)},
			{Lower: decimal.NewFromInt(700000), Upper: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.10)},
			{Lower: decimal.NewFromInt(1000000), Upper: decimal.NewFromInt(1200000), Rate: decimal.NewFromFloat(0.15)},
			{Lower: decimal.NewFromInt(1200000), Upper: decimal.NewFromInt(1500000), Rate: decimal.NewFromFloat(0.20)},
			{Lower: decimal.NewFromInt(1500000), Rate: decimal.NewFromFloat(0.30)},
		},
		StandardDeduction:     decimal.NewFromInt(75000),
		DeductionCaps:         map[domain.DeductionCategory]decimal.Decimal{},
		RebateIncomeThreshold: decimal.NewFromInt(700000),
		RebateMaxAmount:       decimal.NewFromInt(25000),
		CessRate:              decimal.NewFromFloat(0.04),
	}
}

// NewOldRegimeTable2526 returns the FY 2025-26 old regime table. The
// old regime schedule carried over unchanged from FY 2024-25.
func NewOldRegimeTable2526() domain.RegimeRuleTable {
	table := NewOldRegimeTable2425()
	table.FiscalYear = "2025-26"
	return table
}

// NewNewRegimeTable2526 returns the FY 2025-26 new regime table with
// the widened slabs and the raised rebate threshold.
func NewNewRegimeTable2526() domain.RegimeRuleTable {
	return domain.RegimeRuleTable{
		Regime:     domain.RegimeNew,
		FiscalYear: "2025-26",
		Slabs: []domain.Slab{
			{Lower: decimal.Zero, Upper: decimal.NewFromInt(400000), Rate: decimal.Zero},
			{Lower: decimal.NewFromInt(400000), Upper: decimal.NewFromInt(800000), Rate: decimal.NewFromFloat(0.05)},
			{Lower: decimal.NewFromInt(800000), Upper: decimal.NewFromInt(1200000), Rate: decimal.NewFromFloat(0.10)},
			{Lower: decimal.NewFromInt(1200000), Upper: decimal.NewFromInt(1600000), Rate: decimal.NewFromFloat(0.15)},
			{Lower: decimal.NewFromInt(1600000), Upper: decimal.NewFromInt(2000000), Rate: decimal.NewFromFloat(0.20)},
			{Lower: decimal.NewFromInt(2000000), Upper: decimal.NewFromInt(2400000), Rate: decimal.NewFromFloat(0.25)},
			{Lower: decimal.NewFromInt(2400000), Rate: decimal.NewFromFloat(0.30)},
		},
		StandardDeduction:     decimal.NewFromInt(75000),
		DeductionCaps:         map[domain.DeductionCategory]decimal.Decimal{},
		RebateIncomeThreshold: decimal.NewFromInt(1200000),
		RebateMaxAmount:       decimal.NewFromInt(60000),
		CessRate:              decimal.NewFromFloat(0.04),
	}
}

// BuiltInTables returns every table the engine ships with.
func BuiltInTables() []domain.RegimeRuleTable {
	return []domain.RegimeRuleTable{
		NewOldRegimeTable2425(),
		NewNewRegimeTable2425(),
		NewOldRegimeTable2526(),
		NewNewRegimeTable2526(),
	}
}
