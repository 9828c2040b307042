package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/myca/taxgo/internal/domain"
)

// NormalizeDeductions clips the input's deduction claims against the
// regime's per-category caps. A zero or absent cap disallows the
// category outright (this is how the new regime suppresses itemized
// deductions); the explicit no-cap marker admits the full claim. The
// standard deduction is added unconditionally and is never clipped.
// Pure function: the input is not modified.
func NormalizeDeductions(input domain.TaxInput, table domain.RegimeRuleTable) (domain.NormalizedDeductions, error) {
	normalized := domain.NormalizedDeductions{
		ByCategory:        make(map[domain.DeductionCategory]decimal.Decimal, len(input.Deductions)),
		StandardDeduction: table.StandardDeduction,
	}

	total := decimal.Zero
	for category, amount := range input.Deductions {
		if amount.IsNegative() {
			return domain.NormalizedDeductions{}, fmt.Errorf("%w: deduction %s cannot be negative", domain.ErrInvalidInput, category)
		}

		ceiling, allowed := table.DeductionCaps[category]
		switch {
		case !allowed || ceiling.IsZero():
			normalized.ByCategory[category] = decimal.Zero
		case ceiling.Equal(domain.NoCap):
			normalized.ByCategory[category] = amount
		default:
			normalized.ByCategory[category] = decimal.Min(amount, ceiling)
		}
		total = total.Add(normalized.ByCategory[category])
	}

	if table.StandardDeduction.GreaterThan(decimal.Zero) {
		total = total.Add(table.StandardDeduction)
	}
	normalized.Total = total

	return normalized, nil
}
