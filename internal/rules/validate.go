package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/myca/taxgo/internal/domain"
)

var one = decimal.NewFromInt(1)

// ValidateTable checks a rule table at registration time. Slab bounds
// must start at zero, rise monotonically without gaps or overlaps, and
// end in a single unbounded slab; rates and the cess rate must be
// fractions in [0, 1]; caps and rebate figures must be non-negative
// (or the explicit no-cap marker).
func ValidateTable(table domain.RegimeRuleTable) error {
	if table.Regime != domain.RegimeOld && table.Regime != domain.RegimeNew {
		return fmt.Errorf("%w: unknown regime %q", domain.ErrConfiguration, table.Regime)
	}
	if table.FiscalYear == "" {
		return fmt.Errorf("%w: fiscal year is required", domain.ErrConfiguration)
	}
	if len(table.Slabs) == 0 {
		return fmt.Errorf("%w: %s/%s has no slabs", domain.ErrConfiguration, table.FiscalYear, table.Regime)
	}

	for i, slab := range table.Slabs {
		if slab.Rate.IsNegative() || slab.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: %s/%s slab %d rate must be between 0 and 1", domain.ErrConfiguration, table.FiscalYear, table.Regime, i)
		}
		if slab.Lower.IsNegative() {
			return fmt.Errorf("%w: %s/%s slab %d has a negative lower bound", domain.ErrConfiguration, table.FiscalYear, table.Regime, i)
		}

		last := i == len(table.Slabs)-1
		if last {
			if !slab.Unbounded() {
				return fmt.Errorf("%w: %s/%s final slab must be unbounded", domain.ErrConfiguration, table.FiscalYear, table.Regime)
			}
			continue
		}
		if slab.Unbounded() {
			return fmt.Errorf("%w: %s/%s slab %d is unbounded but not final", domain.ErrConfiguration, table.FiscalYear, table.Regime, i)
		}
		if slab.Upper.LessThanOrEqual(slab.Lower) {
			return fmt.Errorf("%w: %s/%s slab %d upper bound must exceed lower bound", domain.ErrConfiguration, table.FiscalYear, table.Regime, i)
		}
		// Contiguity: the next slab picks up exactly where this one ends,
		// so no income unit is taxed twice or skipped.
		if !table.Slabs[i+1].Lower.Equal(slab.Upper) {
			return fmt.Errorf("%w: %s/%s slab %d and %d are not contiguous", domain.ErrConfiguration, table.FiscalYear, table.Regime, i, i+1)
		}
	}
	if !table.Slabs[0].Lower.IsZero() {
		return fmt.Errorf("%w: %s/%s first slab must start at zero", domain.ErrConfiguration, table.FiscalYear, table.Regime)
	}

	if table.StandardDeduction.IsNegative() {
		return fmt.Errorf("%w: %s/%s standard deduction cannot be negative", domain.ErrConfiguration, table.FiscalYear, table.Regime)
	}
	for category, cap := range table.DeductionCaps {
		if cap.IsNegative() && !cap.Equal(domain.NoCap) {
			return fmt.Errorf("%w: %s/%s cap for %s cannot be negative", domain.ErrConfiguration, table.FiscalYear, table.Regime, category)
		}
	}
	if table.RebateIncomeThreshold.IsNegative() {
		return fmt.Errorf("%w: %s/%s rebate threshold cannot be negative", domain.ErrConfiguration, table.FiscalYear, table.Regime)
	}
	if table.RebateMaxAmount.IsNegative() {
		return fmt.Errorf("%w: %s/%s rebate max cannot be negative", domain.ErrConfiguration, table.FiscalYear, table.Regime)
	}
	if table.CessRate.IsNegative() || table.CessRate.GreaterThan(one) {
		return fmt.Errorf("%w: %s/%s cess rate must be between 0 and 1", domain.ErrConfiguration, table.FiscalYear, table.Regime)
	}

	return nil
}
