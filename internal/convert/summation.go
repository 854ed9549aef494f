package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// convertHeaderMonetarySummation maps the document totals. Output order is
// schema-positional: line, charge, allowance and tax-basis totals first,
// then one currency-qualified tax total per source tax total, then the
// closing amounts. The summation element is emitted even when the source
// carries no totals at all.
func (c *converter) convertHeaderMonetarySummation(total *ubl.MonetaryTotal, taxTotalAmounts []ubl.Amount) *cii.TradeSettlementHeaderMonetarySummation {
	ret := &cii.TradeSettlementHeaderMonetarySummation{}

	if total != nil {
		if a := c.amount(total.LineExtensionAmount, false); a != nil {
			ret.LineTotalAmount = append(ret.LineTotalAmount, a)
		}
		if a := c.amount(total.ChargeTotalAmount, false); a != nil {
			ret.ChargeTotalAmount = append(ret.ChargeTotalAmount, a)
		}
		if a := c.amount(total.AllowanceTotalAmount, false); a != nil {
			ret.AllowanceTotalAmount = append(ret.AllowanceTotalAmount, a)
		}
		if a := c.amount(total.TaxExclusiveAmount, false); a != nil {
			ret.TaxBasisTotalAmount = append(ret.TaxBasisTotalAmount, a)
		}
	}

	for i := range taxTotalAmounts {
		// The tax total is the one amount the schema requires a currency on.
		ret.TaxTotalAmount = append(ret.TaxTotalAmount, c.amount(&taxTotalAmounts[i], true))
	}

	if total != nil {
		if a := c.amount(total.PayableRoundingAmount, false); a != nil {
			ret.RoundingAmount = append(ret.RoundingAmount, a)
		}
		if a := c.amount(total.TaxInclusiveAmount, false); a != nil {
			ret.GrandTotalAmount = append(ret.GrandTotalAmount, a)
		}
		if a := c.amount(total.PrepaidAmount, false); a != nil {
			ret.TotalPrepaidAmount = append(ret.TotalPrepaidAmount, a)
		}
		if a := c.amount(total.PayableAmount, false); a != nil {
			ret.DuePayableAmount = append(ret.DuePayableAmount, a)
		}
	}

	return ret
}
