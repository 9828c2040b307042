package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/myca/taxgo/internal/domain"
)

// RulesFile is the on-disk shape of a rule-table bundle. A file holds
// the full table set for one or more fiscal years so a reload is always
// all-or-nothing.
type RulesFile struct {
	Metadata RulesMetadata            `yaml:"metadata"`
	Tables   []domain.RegimeRuleTable `yaml:"tables"`
}

// RulesMetadata describes the provenance of a rules file.
type RulesMetadata struct {
	LastUpdated string `yaml:"last_updated"`
	Description string `yaml:"description"`
}

// LoadTablesFromFile reads and validates a YAML rules file.
func LoadTablesFromFile(filename string) ([]domain.RegimeRuleTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}

	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse rules YAML: %v", domain.ErrConfiguration, err)
	}

	for _, table := range file.Tables {
		if err := ValidateTable(table); err != nil {
			return nil, err
		}
	}

	return file.Tables, nil
}

// NewRegistryFromFile builds a registry from a YAML rules file.
func NewRegistryFromFile(filename string) (*Registry, error) {
	tables, err := LoadTablesFromFile(filename)
	if err != nil {
		return nil, err
	}
	return NewRegistryWithTables(tables)
}
