package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/myca/taxgo/internal/domain"
)

// InputParser handles parsing of taxpayer input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a TaxInput from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.TaxInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.TaxInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", domain.ErrInvalidInput, err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates a loaded tax input
func (ip *InputParser) ValidateInput(input *domain.TaxInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	for category := range input.Deductions {
		if !knownCategory(category) {
			return fmt.Errorf("%w: unknown deduction category %q", domain.ErrInvalidInput, category)
		}
	}
	return nil
}

// knownCategory reports whether a deduction category is one of the
// modeled heads.
func knownCategory(category domain.DeductionCategory) bool {
	switch category {
	case domain.Deduction80C, domain.Deduction80D, domain.DeductionHRA, domain.DeductionOther:
		return true
	}
	return false
}
