package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// convertAllowanceCharge maps a document-level allowance or charge. The
// charge indicator is always emitted, so an absent source indicator reads
// as an allowance. Percent and base amount are copied verbatim; only the
// actual amount is numerically normalized.
func (c *converter) convertAllowanceCharge(ac ubl.AllowanceCharge) *cii.TradeAllowanceCharge {
	ret := &cii.TradeAllowanceCharge{
		ChargeIndicator:    &cii.Indicator{Value: ac.ChargeIndicator},
		CalculationPercent: ac.MultiplierFactorNumeric,
		ReasonCode:         ac.AllowanceChargeReasonCode,
	}

	ret.ActualAmount = append(ret.ActualAmount, c.amount(ac.Amount, false))

	if len(ac.AllowanceChargeReason) > 0 {
		ret.Reason = ac.AllowanceChargeReason[0]
	}
	if ac.BaseAmount != nil {
		ret.BasisAmount = &cii.Amount{Value: ac.BaseAmount.Value}
	}

	if len(ac.TaxCategory) > 0 {
		cat := ac.TaxCategory[0]
		tax := &cii.TradeTax{
			CategoryCode:          cat.ID,
			RateApplicablePercent: cat.Percent,
		}
		if cat.TaxScheme != nil {
			tax.TypeCode = cat.TaxScheme.ID
		}
		ret.CategoryTradeTax = tax
	}

	return ret
}
