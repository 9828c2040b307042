package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/myca/taxgo/internal/domain"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted side-by-side regime comparison
func (tf *TableFormatter) Format(result *domain.ComparisonResult) string {
	var sb strings.Builder

	// Header
	sb.WriteString("INCOME TAX REGIME COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Fiscal Year: %s\n", result.OldRegime.FiscalYear))
	sb.WriteString(fmt.Sprintf("Gross Income: ₹%s\n", tf.formatDecimal(result.OldRegime.GrossIncome)))
	sb.WriteString("\n")

	// Column widths
	labelWidth := 22
	numWidth := 18

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		labelWidth, "",
		numWidth, "Old Regime",
		numWidth, "New Regime"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	rows := []struct {
		label  string
		oldVal decimal.Decimal
		newVal decimal.Decimal
	}{
		{"Total Deductions", result.OldRegime.TotalDeductions, result.NewRegime.TotalDeductions},
		{"Taxable Income", result.OldRegime.TaxableIncome, result.NewRegime.TaxableIncome},
		{"Slab Tax", result.OldRegime.SlabTax, result.NewRegime.SlabTax},
		{"Rebate Applied", result.OldRegime.RebateApplied, result.NewRegime.RebateApplied},
		{"Cess", result.OldRegime.CessAmount, result.NewRegime.CessAmount},
		{"Total Tax Payable", result.OldRegime.TotalTaxPayable, result.NewRegime.TotalTaxPayable},
	}

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
			labelWidth, row.label,
			numWidth, "₹"+tf.formatDecimal(row.oldVal),
			numWidth, "₹"+tf.formatDecimal(row.newVal)))
	}

	sb.WriteString(fmt.Sprintf("%-*s %*s%% %*s%%\n",
		labelWidth, "Effective Rate",
		numWidth-1, result.OldRegime.EffectiveRate.StringFixed(2),
		numWidth-1, result.NewRegime.EffectiveRate.StringFixed(2)))

	sb.WriteString(strings.Repeat("=", 72) + "\n")

	// Recommendation
	sb.WriteString("\nRECOMMENDATION\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	if result.Savings.IsZero() {
		sb.WriteString("Both regimes produce the same liability; the old regime is\n")
		sb.WriteString("recommended since it keeps deduction flexibility for future years.\n")
	} else {
		sb.WriteString(fmt.Sprintf("The %s regime saves ₹%s.\n",
			result.RecommendedRegime, tf.formatDecimal(result.Savings)))
	}

	return sb.String()
}

// formatDecimal renders a rupee amount in Indian digit grouping: the
// last three digits, then groups of two (2,10,600 rather than 210,600).
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(0)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		s = strings.Join(parts, ",") + "," + tail
	}

	if negative {
		s = "-" + s
	}
	return s
}
