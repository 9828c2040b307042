package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myca/taxgo/internal/domain"
)

// RebateAndCess is the adjustment applied on top of slab tax: the
// Section 87A rebate followed by the health and education cess.
type RebateAndCess struct {
	RebateApplied   decimal.Decimal
	CessAmount      decimal.Decimal
	TotalTaxPayable decimal.Decimal
}

// ApplyRebateAndCess grants the full-liability rebate (up to the
// table's cap) when taxable income is at or below the rebate threshold,
// then levies cess on the tax that remains. A zero post-rebate tax
// yields zero cess, so low-income taxpayers owe nothing at all.
func ApplyRebateAndCess(slabTax, taxableIncome decimal.Decimal, table domain.RegimeRuleTable) RebateAndCess {
	rebate := decimal.Zero
	if taxableIncome.LessThanOrEqual(table.RebateIncomeThreshold) {
		rebate = decimal.Min(slabTax, table.RebateMaxAmount)
	}

	afterRebate := slabTax.Sub(rebate)
	if afterRebate.IsNegative() {
		afterRebate = decimal.Zero
	}

	cess := domain.RoundRupee(afterRebate.Mul(table.CessRate))

	return RebateAndCess{
		RebateApplied:   rebate,
		CessAmount:      cess,
		TotalTaxPayable: afterRebate.Add(cess),
	}
}
