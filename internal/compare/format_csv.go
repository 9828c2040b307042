package compare

import (
	"encoding/csv"
	"strings"

	"github.com/myca/taxgo/internal/domain"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for a comparison result, one row per
// regime plus the recommendation.
func (cf *CSVFormatter) Format(result *domain.ComparisonResult) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Regime",
		"Fiscal Year",
		"Gross Income",
		"Total Deductions",
		"Taxable Income",
		"Slab Tax",
		"Rebate Applied",
		"Cess",
		"Total Tax Payable",
		"Effective Rate %",
		"Recommended",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, regime := range []domain.RegimeResult{result.OldRegime, result.NewRegime} {
		if err := writer.Write(cf.formatRow(regime, result.RecommendedRegime)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats one regime result as a CSV row
func (cf *CSVFormatter) formatRow(result domain.RegimeResult, recommended domain.Regime) []string {
	isRecommended := "no"
	if result.Regime == recommended {
		isRecommended = "yes"
	}
	return []string{
		string(result.Regime),
		result.FiscalYear,
		result.GrossIncome.StringFixed(2),
		result.TotalDeductions.StringFixed(2),
		result.TaxableIncome.StringFixed(2),
		result.SlabTax.StringFixed(2),
		result.RebateApplied.StringFixed(2),
		result.CessAmount.StringFixed(2),
		result.TotalTaxPayable.StringFixed(2),
		result.EffectiveRate.StringFixed(2),
		isRecommended,
	}
}
