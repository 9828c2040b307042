package compare

import (
	"fmt"

	"github.com/myca/taxgo/internal/calculation"
	"github.com/myca/taxgo/internal/domain"
	"github.com/myca/taxgo/internal/rules"
)

// Comparator runs the computation pipeline once per regime and selects
// the cheaper liability. One parametrized pipeline serves both regimes;
// only the rule table differs.
type Comparator struct {
	Engine   *calculation.Engine
	Registry *rules.Registry
}

// NewComparator creates a comparator over a rule-table registry.
func NewComparator(registry *rules.Registry) *Comparator {
	return &Comparator{
		Engine:   calculation.NewEngine(),
		Registry: registry,
	}
}

// Compare computes both regimes for the input's fiscal year and
// recommends the one with the strictly lower total. On an exact tie the
// old regime wins: it preserves deduction flexibility in later years.
func (c *Comparator) Compare(input domain.TaxInput) (*domain.ComparisonResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	oldTable, newTable, err := c.Registry.Lookup(input.FiscalYear)
	if err != nil {
		return nil, err
	}

	oldResult, err := c.Engine.ComputeRegime(input, oldTable)
	if err != nil {
		return nil, fmt.Errorf("old regime computation failed: %w", err)
	}

	newResult, err := c.Engine.ComputeRegime(input, newTable)
	if err != nil {
		return nil, fmt.Errorf("new regime computation failed: %w", err)
	}

	recommended := domain.RegimeOld
	if newResult.TotalTaxPayable.LessThan(oldResult.TotalTaxPayable) {
		recommended = domain.RegimeNew
	}

	return &domain.ComparisonResult{
		OldRegime:         oldResult,
		NewRegime:         newResult,
		RecommendedRegime: recommended,
		Savings:           oldResult.TotalTaxPayable.Sub(newResult.TotalTaxPayable).Abs(),
	}, nil
}
