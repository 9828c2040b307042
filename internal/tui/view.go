package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/myca/taxgo/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("taxgo: income tax regime explorer"))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("Fiscal Year"))
	sb.WriteString(FiscalYearStyle.Render(m.years[m.yearIndex]))
	sb.WriteString("\n\n")

	for i := range m.inputs {
		label := LabelStyle
		if i == m.focused {
			label = FocusedLabelStyle
		}
		sb.WriteString(label.Render(fieldLabels[i]))
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	} else if m.result != nil {
		sb.WriteString(PanelStyle.Render(m.renderComparison()))
		sb.WriteString("\n")
	}

	sb.WriteString(HelpStyle.Render("tab/shift+tab: move  •  [ ]: fiscal year  •  esc: quit"))
	sb.WriteString("\n")

	return sb.String()
}

// renderComparison lays out the two regime results side by side.
func (m Model) renderComparison() string {
	result := m.result
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-20s %16s %16s\n", "", "Old Regime", "New Regime"))

	rows := []struct {
		label  string
		oldVal decimal.Decimal
		newVal decimal.Decimal
	}{
		{"Deductions", result.OldRegime.TotalDeductions, result.NewRegime.TotalDeductions},
		{"Taxable Income", result.OldRegime.TaxableIncome, result.NewRegime.TaxableIncome},
		{"Slab Tax", result.OldRegime.SlabTax, result.NewRegime.SlabTax},
		{"Rebate", result.OldRegime.RebateApplied, result.NewRegime.RebateApplied},
		{"Cess", result.OldRegime.CessAmount, result.NewRegime.CessAmount},
		{"Total Tax", result.OldRegime.TotalTaxPayable, result.NewRegime.TotalTaxPayable},
	}
	// Styles carry ANSI escapes that break fmt's width padding, so the
	// grid is laid out plain and only the verdict line is styled.
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-20s %16s %16s\n",
			row.label,
			"₹"+row.oldVal.StringFixed(0),
			"₹"+row.newVal.StringFixed(0)))
	}
	sb.WriteString(fmt.Sprintf("%-20s %15s%% %15s%%\n",
		"Effective Rate",
		result.OldRegime.EffectiveRate.StringFixed(2),
		result.NewRegime.EffectiveRate.StringFixed(2)))

	sb.WriteString("\n")
	label := "OLD regime"
	if result.RecommendedRegime == domain.RegimeNew {
		label = "NEW regime"
	}
	if result.Savings.IsZero() {
		sb.WriteString(RecommendedStyle.Render("Tie: old regime recommended"))
	} else {
		sb.WriteString(RecommendedStyle.Render(fmt.Sprintf("Recommended: %s (saves ₹%s)", label, result.Savings.StringFixed(0))))
	}

	return sb.String()
}
