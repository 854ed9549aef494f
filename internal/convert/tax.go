package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// convertTradeTax maps one tax subtotal to a per-category tax record. The
// tax category aggregate is schema-mandatory on the source side and is not
// defended against here.
//
// The rate percent is copied verbatim; the calculated and basis amounts
// are numerically normalized.
func (c *converter) convertTradeTax(sub ubl.TaxSubtotal) *cii.TradeTax {
	cat := sub.TaxCategory

	ret := &cii.TradeTax{
		CategoryCode:          cat.ID,
		RateApplicablePercent: cat.Percent,
		ExemptionReasonCode:   cat.TaxExemptionReasonCode,
	}
	if cat.TaxScheme != nil {
		ret.TypeCode = cat.TaxScheme.ID
	}
	if len(cat.TaxExemptionReason) > 0 {
		ret.ExemptionReason = cat.TaxExemptionReason[0]
	}

	if a := c.amount(sub.TaxAmount, false); a != nil {
		ret.CalculatedAmount = append(ret.CalculatedAmount, a)
	}
	if a := c.amount(sub.TaxableAmount, false); a != nil {
		ret.BasisAmount = append(ret.BasisAmount, a)
	}

	return ret
}
