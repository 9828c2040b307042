package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myca/taxgo/internal/domain"
)

func writeTempInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempInput(t, `gross_annual_income: "1500000"
fiscal_year: "2024-25"
deductions:
  80c: "150000"
  80d: "25000"
  hra: "120000"
`)

	input, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1500000).Equal(input.GrossAnnualIncome))
	assert.Equal(t, "2024-25", input.FiscalYear)
	assert.True(t, decimal.NewFromInt(150000).Equal(input.Deductions[domain.Deduction80C]))
	assert.True(t, decimal.NewFromInt(120000).Equal(input.Deductions[domain.DeductionHRA]))
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	path := writeTempInput(t, "gross_annual_income: [broken")

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateInput(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name  string
		input domain.TaxInput
		ok    bool
	}{
		{
			"valid",
			domain.TaxInput{
				GrossAnnualIncome: decimal.NewFromInt(800000),
				FiscalYear:        "2024-25",
				Deductions: map[domain.DeductionCategory]decimal.Decimal{
					domain.Deduction80C: decimal.NewFromInt(50000),
				},
			},
			true,
		},
		{
			"negative income",
			domain.TaxInput{GrossAnnualIncome: decimal.NewFromInt(-1), FiscalYear: "2024-25"},
			false,
		},
		{
			"negative deduction",
			domain.TaxInput{
				GrossAnnualIncome: decimal.NewFromInt(800000),
				FiscalYear:        "2024-25",
				Deductions: map[domain.DeductionCategory]decimal.Decimal{
					domain.Deduction80D: decimal.NewFromInt(-100),
				},
			},
			false,
		},
		{
			"missing fiscal year",
			domain.TaxInput{GrossAnnualIncome: decimal.NewFromInt(800000)},
			false,
		},
		{
			"unknown category",
			domain.TaxInput{
				GrossAnnualIncome: decimal.NewFromInt(800000),
				FiscalYear:        "2024-25",
				Deductions: map[domain.DeductionCategory]decimal.Decimal{
					"80zz": decimal.NewFromInt(100),
				},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateInput(&tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			}
		})
	}
}
