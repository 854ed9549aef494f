package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/diagnostic"
	"ubl2cii/internal/ubl"
)

// Invoice converts a UBL 2.1 invoice to a CII D16B cross industry invoice.
// The conversion is a pure mapping: the source is never mutated, totals are
// copied rather than recomputed, and repeated calls on the same input yield
// the same output. Findings are recorded on diags; the returned error only
// covers nil arguments.
func Invoice(doc *ubl.Invoice, diags *diagnostic.Sink) (*cii.CrossIndustryInvoice, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if diags == nil {
		return nil, ErrNilSink
	}

	c := &converter{diags: diags}

	ret := cii.NewCrossIndustryInvoice()
	ret.ExchangedDocumentContext = convertContext(doc.CustomizationID)
	ret.ExchangedDocument = c.convertExchangedDocument(doc.ID, doc.InvoiceTypeCode, doc.IssueDate, doc.Note)

	trans := &cii.SupplyChainTradeTransaction{}
	for i := range doc.InvoiceLine {
		line := doc.InvoiceLine[i]
		trans.IncludedSupplyChainTradeLineItem = append(trans.IncludedSupplyChainTradeLineItem,
			c.convertLine(lineInput{
				id:                  line.ID,
				notes:               line.Note,
				quantity:            line.InvoicedQuantity,
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
		dueDate:              doc.DueDate,
	})

	ret.SupplyChainTradeTransaction = trans

	return ret, nil
}

// convertContext maps the customization identifier to the guideline context
// parameter. An absent identifier yields an empty context section.
func convertContext(customizationID string) *cii.ExchangedDocumentContext {
	ctx := &cii.ExchangedDocumentContext{}
	if customizationID != "" {
		ctx.GuidelineSpecifiedDocumentContextParameter = append(
			ctx.GuidelineSpecifiedDocumentContextParameter,
			&cii.DocumentContextParameter{ID: customizationID})
	}

	return ctx
}

// convertExchangedDocument maps the document header.
func (c *converter) convertExchangedDocument(id, typeCode, issueDate string, notes []string) *cii.ExchangedDocument {
	ret := &cii.ExchangedDocument{
		ID:            id,
		TypeCode:      typeCode,
		IssueDateTime: c.dateTime(issueDate),
	}
	for _, note := range notes {
		if n := convertNote(note); n != nil {
			ret.IncludedNote = append(ret.IncludedNote, n)
		}
	}

	return ret
}

// firstDelivery selects the single delivery the target admits.
func firstDelivery(c *converter, deliveries []ubl.Delivery) *ubl.Delivery {
	if len(deliveries) == 0 {
		return nil
	}
	c.noteDiscarded(len(deliveries), "BG-13", "Delivery")

	return &deliveries[0]
}
