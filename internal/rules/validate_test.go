package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myca/taxgo/internal/domain"
)

func validTable() domain.RegimeRuleTable {
	return NewNewRegimeTable2425()
}

func TestValidateTable_BuiltInsAreValid(t *testing.T) {
	for _, table := range BuiltInTables() {
		assert.NoError(t, ValidateTable(table), "%s/%s", table.FiscalYear, table.Regime)
	}
}

func TestValidateTable_RejectsMalformedTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RegimeRuleTable)
	}{
		{
			"no slabs",
			func(tb *domain.RegimeRuleTable) { tb.Slabs = nil },
		},
		{
			"first slab not at zero",
			func(tb *domain.RegimeRuleTable) { tb.Slabs[0].Lower = decimal.NewFromInt(100) },
		},
		{
			"gap between slabs",
			func(tb *domain.RegimeRuleTable) { tb.Slabs[1].Lower = decimal.NewFromInt(350000) },
		},
		{
			"overlapping slabs",
			func(tb *domain.RegimeRuleTable) { tb.Slabs[1].Lower = decimal.NewFromInt(250000) },
		},
		{
			"inverted bounds",
			func(tb *domain.RegimeRuleTable) { tb.Slabs[1].Upper = decimal.NewFromInt(200000) },
		},
		{
			"bounded final slab",
			func(tb *domain.RegimeRuleTable) {
				tb.Slabs[len(tb.Slabs)-1].Upper = decimal.NewFromInt(9000000)
			},
		},
		{
			"rate above one",
			func(tb *domain.RegimeRuleTable) { tb.Slabs[1].Rate = decimal.NewFromFloat(1.5) },
		},
		{
			"negative rate",
			func(tb *domain.RegimeRuleTable) { tb.Slabs[1].Rate = decimal.NewFromFloat(-0.05) },
		},
		{
			"negative standard deduction",
			func(tb *domain.RegimeRuleTable) { tb.StandardDeduction = decimal.NewFromInt(-1) },
		},
		{
			"negative deduction cap",
			func(tb *domain.RegimeRuleTable) {
				tb.DeductionCaps = map[domain.DeductionCategory]decimal.Decimal{
					domain.Deduction80C: decimal.NewFromInt(-5),
				}
			},
		},
		{
			"cess above one",
			func(tb *domain.RegimeRuleTable) { tb.CessRate = decimal.NewFromInt(2) },
		},
		{
			"negative rebate threshold",
			func(tb *domain.RegimeRuleTable) { tb.RebateIncomeThreshold = decimal.NewFromInt(-1) },
		},
		{
			"unknown regime",
			func(tb *domain.RegimeRuleTable) { tb.Regime = "flat" },
		},
		{
			"missing fiscal year",
			func(tb *domain.RegimeRuleTable) { tb.FiscalYear = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := validTable()
			tt.mutate(&table)

			err := ValidateTable(table)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestValidateTable_NoCapMarkerAllowed(t *testing.T) {
	table := NewOldRegimeTable2425()
	assert.NoError(t, ValidateTable(table), "explicit no-cap marker is not a negative cap")
}
