package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myca/taxgo/internal/domain"
)

const testRulesYAML = `metadata:
  last_updated: "2026-04-01"
  description: "test tables"
tables:
  - regime: old
    fiscal_year: "2026-27"
    slabs:
      - {lower: "0", upper: "250000", rate: "0"}
      - {lower: "250000", upper: "500000", rate: "0.05"}
      - {lower: "500000", upper: "1000000", rate: "0.20"}
      - {lower: "1000000", rate: "0.30"}
    standard_deduction: "50000"
    deduction_caps:
      80c: "150000"
      80d: "75000"
      hra: "-1"
      other: "-1"
    rebate_income_threshold: "500000"
    rebate_max_amount: "12500"
    cess_rate: "0.04"
  - regime: new
    fiscal_year: "2026-27"
    slabs:
      - {lower: "0", upper: "400000", rate: "0"}
      - {lower: "400000", upper: "800000", rate: "0.05"}
      - {lower: "800000", rate: "0.30"}
    standard_deduction: "75000"
    rebate_income_threshold: "1200000"
    rebate_max_amount: "60000"
    cess_rate: "0.04"
`

func writeTempRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTablesFromFile(t *testing.T) {
	path := writeTempRules(t, testRulesYAML)

	tables, err := LoadTablesFromFile(path)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, domain.RegimeOld, tables[0].Regime)
	assert.Equal(t, "2026-27", tables[0].FiscalYear)
	assert.True(t, tables[0].DeductionCaps[domain.DeductionHRA].Equal(domain.NoCap))
	assert.Len(t, tables[1].Slabs, 3)
}

func TestNewRegistryFromFile(t *testing.T) {
	path := writeTempRules(t, testRulesYAML)

	registry, err := NewRegistryFromFile(path)
	require.NoError(t, err)

	oldTable, newTable, err := registry.Lookup("2026-27")
	require.NoError(t, err)
	assert.Equal(t, domain.RegimeOld, oldTable.Regime)
	assert.Equal(t, domain.RegimeNew, newTable.Regime)
}

func TestNewRegistryFromFile_EmptyTables(t *testing.T) {
	path := writeTempRules(t, `metadata:
  description: "no tables"
`)

	_, err := NewRegistryFromFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoadTablesFromFile_MissingFile(t *testing.T) {
	_, err := LoadTablesFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadTablesFromFile_MalformedYAML(t *testing.T) {
	path := writeTempRules(t, "tables: [not a table")

	_, err := LoadTablesFromFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoadTablesFromFile_InvalidTable(t *testing.T) {
	bad := `tables:
  - regime: new
    fiscal_year: "2026-27"
    slabs:
      - {lower: "100", upper: "400000", rate: "0"}
      - {lower: "400000", rate: "0.30"}
    cess_rate: "0.04"
`
	path := writeTempRules(t, bad)

	_, err := LoadTablesFromFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
