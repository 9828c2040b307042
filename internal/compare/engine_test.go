package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myca/taxgo/internal/domain"
	"github.com/myca/taxgo/internal/rules"
)

func newTestComparator(t *testing.T) *Comparator {
	t.Helper()
	registry, err := rules.NewRegistry()
	require.NoError(t, err)
	return NewComparator(registry)
}

func TestComparator_NewRegimeWinsForHighIncomeNoDeductions(t *testing.T) {
	comparator := newTestComparator(t)

	result, err := comparator.Compare(domain.TaxInput{
		GrossAnnualIncome: decimal.NewFromInt(1500000),
		FiscalYear:        "2024-25",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RegimeNew, result.RecommendedRegime)
	assert.True(t, result.NewRegime.TotalTaxPayable.LessThan(result.OldRegime.TotalTaxPayable))
	assert.True(t, result.Savings.Equal(result.OldRegime.TotalTaxPayable.Sub(result.NewRegime.TotalTaxPayable)))
}

func TestComparator_HandComputedComparison(t *testing.T) {
	comparator := newTestComparator(t)

	result, err := comparator.Compare(domain.TaxInput{
		GrossAnnualIncome: decimal.NewFromInt(1500000),
		FiscalYear:        "2024-25",
		Deductions: map[domain.DeductionCategory]decimal.Decimal{
			domain.Deduction80C: decimal.NewFromInt(150000),
		},
	})
	require.NoError(t, err)

	// Old: taxable 1,300,000 -> 202,500 + 8,100 cess = 210,600.
	assert.True(t, decimal.NewFromInt(210600).Equal(result.OldRegime.TotalTaxPayable), "got %s", result.OldRegime.TotalTaxPayable)
	// New: deductions suppressed, taxable 1,425,000 -> 125,000 + 5,000 cess = 130,000.
	assert.True(t, decimal.NewFromInt(130000).Equal(result.NewRegime.TotalTaxPayable), "got %s", result.NewRegime.TotalTaxPayable)
	assert.Equal(t, domain.RegimeNew, result.RecommendedRegime)
	assert.True(t, decimal.NewFromInt(80600).Equal(result.Savings), "got %s", result.Savings)
}

func TestComparator_TieBreaksToOldRegime(t *testing.T) {
	// Register the same table under both regimes so the totals match
	// exactly; the documented tie-break prefers the old regime.
	table := rules.NewNewRegimeTable2425()
	oldTwin := table
	oldTwin.Regime = domain.RegimeOld

	registry, err := rules.NewRegistryWithTables([]domain.RegimeRuleTable{oldTwin, table})
	require.NoError(t, err)

	result, err := NewComparator(registry).Compare(domain.TaxInput{
		GrossAnnualIncome: decimal.NewFromInt(1200000),
		FiscalYear:        "2024-25",
	})
	require.NoError(t, err)

	assert.True(t, result.OldRegime.TotalTaxPayable.Equal(result.NewRegime.TotalTaxPayable))
	assert.Equal(t, domain.RegimeOld, result.RecommendedRegime)
	assert.True(t, result.Savings.IsZero())
}

func TestComparator_UnsupportedFiscalYear(t *testing.T) {
	comparator := newTestComparator(t)

	_, err := comparator.Compare(domain.TaxInput{
		GrossAnnualIncome: decimal.NewFromInt(800000),
		FiscalYear:        "2010-11",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFiscalYear)
}

func TestComparator_NegativeIncome(t *testing.T) {
	comparator := newTestComparator(t)

	_, err := comparator.Compare(domain.TaxInput{
		GrossAnnualIncome: decimal.NewFromInt(-100),
		FiscalYear:        "2024-25",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComparator_LowIncomeBothRegimesZero(t *testing.T) {
	comparator := newTestComparator(t)

	result, err := comparator.Compare(domain.TaxInput{
		GrossAnnualIncome: decimal.NewFromInt(300000),
		FiscalYear:        "2024-25",
	})
	require.NoError(t, err)

	assert.True(t, result.OldRegime.TotalTaxPayable.IsZero())
	assert.True(t, result.NewRegime.TotalTaxPayable.IsZero())
	assert.Equal(t, domain.RegimeOld, result.RecommendedRegime, "zero-tax tie goes to old")
}
