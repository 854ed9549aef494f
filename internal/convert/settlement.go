package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// headerSettlementInput is the document-kind-neutral view of the settlement
// data of a source document. dueDate is the document-level due date; credit
// notes leave it empty.
type headerSettlementInput struct {
	paymentMeans         []ubl.PaymentMeans
	documentCurrencyCode string
	taxCurrencyCode      string
	payee                *ubl.Party
	taxTotals            []ubl.TaxTotal
	taxPointDate         string
	invoicePeriods       []ubl.Period
	allowanceCharges     []ubl.AllowanceCharge
	paymentTerms         []ubl.PaymentTerms
	monetaryTotal        *ubl.MonetaryTotal
	accountingCost       string
	dueDate              string
}

// firstOrNewTradeTax returns the first applicable trade tax of the
// settlement, creating one when none exists yet. The tax point date and due
// date type code have no settlement-level home in the target schema and
// ride on that record.
func firstOrNewTradeTax(s *cii.HeaderTradeSettlement) *cii.TradeTax {
	if len(s.ApplicableTradeTax) == 0 {
		s.ApplicableTradeTax = append(s.ApplicableTradeTax, &cii.TradeTax{})
	}

	return s.ApplicableTradeTax[0]
}

// convertHeaderSettlement maps the settlement section: payment data,
// per-category taxes, billing period, allowances and charges, payment
// terms and the monetary summation.
func (c *converter) convertHeaderSettlement(in headerSettlementInput) *cii.HeaderTradeSettlement {
	ret := &cii.HeaderTradeSettlement{
		InvoiceCurrencyCode: in.documentCurrencyCode,
		TaxCurrencyCode:     in.taxCurrencyCode,
		PayeeTradeParty:     convertParty(in.payee),
	}

	var means *ubl.PaymentMeans
	if len(in.paymentMeans) > 0 {
		means = &in.paymentMeans[0]
		c.noteDiscarded(len(in.paymentMeans), "BG-16", "PaymentMeans")
	}

	if means != nil {
		// First payment id of the first payment means; a later entry never
		// fills in for an empty first one.
		if len(means.PaymentID) > 0 {
			if t := convertText(means.PaymentID[0]); t != nil {
				ret.PaymentReference = append(ret.PaymentReference, t)
			}
		}

		pm := &cii.TradeSettlementPaymentMeans{TypeCode: means.PaymentMeansCode}
		account := &cii.CreditorFinancialAccount{}
		if means.PayeeFinancialAccount != nil {
			account.IBANID = means.PayeeFinancialAccount.ID
		}
		pm.PayeePartyCreditorFinancialAccount = account
		ret.SpecifiedTradeSettlementPaymentMeans = append(ret.SpecifiedTradeSettlementPaymentMeans, pm)
	}

	for _, total := range in.taxTotals {
		for _, sub := range total.TaxSubtotal {
			ret.ApplicableTradeTax = append(ret.ApplicableTradeTax, c.convertTradeTax(sub))
		}
	}

	if in.taxPointDate != "" {
		firstOrNewTradeTax(ret).TaxPointDate = c.date(in.taxPointDate)
	}

	if len(in.invoicePeriods) > 0 {
		period := in.invoicePeriods[0]
		c.noteDiscarded(len(in.invoicePeriods), "BG-14", "InvoicePeriod")

		if len(period.DescriptionCode) > 0 {
			firstOrNewTradeTax(ret).DueDateTypeCode = period.DescriptionCode[0]
		}

		// The billing period element follows the period entry, dates or not.
		ret.BillingSpecifiedPeriod = &cii.SpecifiedPeriod{
			StartDateTime: c.dateTime(period.StartDate),
			EndDateTime:   c.dateTime(period.EndDate),
		}
	}

	for _, ac := range in.allowanceCharges {
		ret.SpecifiedTradeAllowanceCharge = append(ret.SpecifiedTradeAllowanceCharge,
			c.convertAllowanceCharge(ac))
	}

	for _, terms := range in.paymentTerms {
		ret.SpecifiedTradePaymentTerms = append(ret.SpecifiedTradePaymentTerms,
			c.convertPaymentTerms(terms, means, in.dueDate))
	}

	var taxTotalAmounts []ubl.Amount
	for _, total := range in.taxTotals {
		if total.TaxAmount != nil {
			taxTotalAmounts = append(taxTotalAmounts, *total.TaxAmount)
		}
	}
	ret.SpecifiedTradeSettlementHeaderMonetarySummation =
		c.convertHeaderMonetarySummation(in.monetaryTotal, taxTotalAmounts)

	if in.accountingCost != "" {
		ret.ReceivableSpecifiedTradeAccountingAccount = append(
			ret.ReceivableSpecifiedTradeAccountingAccount,
			&cii.TradeAccountingAccount{ID: in.accountingCost})
	}

	return ret
}
