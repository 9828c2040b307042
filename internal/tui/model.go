package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/myca/taxgo/internal/compare"
	"github.com/myca/taxgo/internal/domain"
	"github.com/myca/taxgo/internal/rules"
)

// field indices into Model.inputs
const (
	fieldIncome = iota
	field80C
	field80D
	fieldHRA
	fieldOther
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Gross Income",
	"80C Investments",
	"80D Premiums",
	"HRA Exemption",
	"Other Deductions",
}

var fieldCategories = [fieldCount]domain.DeductionCategory{
	"", // income field, not a deduction
	domain.Deduction80C,
	domain.Deduction80D,
	domain.DeductionHRA,
	domain.DeductionOther,
}

// Model is the interactive regime explorer: editable income and
// deduction fields with a live old-vs-new comparison.
type Model struct {
	comparator *compare.Comparator
	years      []string
	yearIndex  int

	inputs  [fieldCount]textinput.Model
	focused int

	result *domain.ComparisonResult
	err    error

	width  int
	height int
}

// NewModel creates the explorer over a rule-table registry.
func NewModel(registry *rules.Registry) Model {
	m := Model{
		comparator: compare.NewComparator(registry),
		years:      registry.FiscalYears(),
		width:      80,
		height:     24,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 12
		ti.Width = 14
		ti.Validate = digitsOnly
		m.inputs[i] = ti
	}
	m.inputs[fieldIncome].SetValue("1000000")
	m.inputs[fieldIncome].Focus()

	m.recompute()
	return m
}

// digitsOnly rejects non-numeric characters as they are typed.
func digitsOnly(s string) error {
	if _, err := decimal.NewFromString(s); s != "" && err != nil {
		return err
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// currentInput assembles a TaxInput from the field values. Empty
// fields count as zero.
func (m *Model) currentInput() domain.TaxInput {
	deductions := make(map[domain.DeductionCategory]decimal.Decimal)
	for i := field80C; i < fieldCount; i++ {
		deductions[fieldCategories[i]] = fieldAmount(m.inputs[i])
	}
	return domain.TaxInput{
		GrossAnnualIncome: fieldAmount(m.inputs[fieldIncome]),
		Deductions:        deductions,
		FiscalYear:        m.years[m.yearIndex],
	}
}

func fieldAmount(ti textinput.Model) decimal.Decimal {
	value := ti.Value()
	if value == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// recompute refreshes the comparison from the current field values.
func (m *Model) recompute() {
	result, err := m.comparator.Compare(m.currentInput())
	m.result, m.err = result, err
}
