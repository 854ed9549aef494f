package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/diagnostic"
	"ubl2cii/internal/ubl"
)

// CreditNote converts a UBL 2.1 credit note to a CII D16B cross industry
// invoice. The mapping mirrors Invoice, with the credit-note type code and
// credited quantity in place of their invoice counterparts; the payment
// terms can only take their due date from the payment means, since a credit
// note carries no document-level due date.
func CreditNote(doc *ubl.CreditNote, diags *diagnostic.Sink) (*cii.CrossIndustryInvoice, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if diags == nil {
		return nil, ErrNilSink
	}

	c := &converter{diags: diags}

	ret := cii.NewCrossIndustryInvoice()
	ret.ExchangedDocumentContext = convertContext(doc.CustomizationID)
	ret.ExchangedDocument = c.convertExchangedDocument(doc.ID, doc.CreditNoteTypeCode, doc.IssueDate, doc.Note)

	trans := &cii.SupplyChainTradeTransaction{}
	for i := range doc.CreditNoteLine {
		line := doc.CreditNoteLine[i]
		trans.IncludedSupplyChainTradeLineItem = append(trans.IncludedSupplyChainTradeLineItem,
			c.convertLine(lineInput{
				id:                  line.ID,
				notes:               line.Note,
				quantity:            line.CreditedQuantity,
				lineExtensionAmount: line.LineExtensionAmount,
				accountingCost:      line.AccountingCost,
				orderLineReferences: line.OrderLineReference,
				item:                line.Item,
				price:               line.Price,
			}))
	}

	trans.ApplicableHeaderTradeAgreement = c.convertHeaderAgreement(headerAgreementInput{
		buyerReference:       doc.BuyerReference,
		supplier:             doc.AccountingSupplierParty,
		customer:             doc.AccountingCustomerParty,
		projectReferences:    doc.ProjectReference,
		orderReference:       doc.OrderReference,
		contractReferences:   doc.ContractDocumentReference,
		additionalReferences: doc.AdditionalDocumentReference,
	})

	trans.ApplicableHeaderTradeDelivery = c.convertHeaderDelivery(firstDelivery(c, doc.Delivery))

	trans.ApplicableHeaderTradeSettlement = c.convertHeaderSettlement(headerSettlementInput{
		paymentMeans:         doc.PaymentMeans,
		documentCurrencyCode: doc.DocumentCurrencyCode,
		taxCurrencyCode:      doc.TaxCurrencyCode,
		payee:                doc.PayeeParty,
		taxTotals:            doc.TaxTotal,
		taxPointDate:         doc.TaxPointDate,
		invoicePeriods:       doc.InvoicePeriod,
		allowanceCharges:     doc.AllowanceCharge,
		paymentTerms:         doc.PaymentTerms,
		monetaryTotal:        doc.LegalMonetaryTotal,
		accountingCost:       doc.AccountingCost,
	})

	ret.SupplyChainTradeTransaction = trans

	return ret, nil
}
