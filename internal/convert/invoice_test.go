package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubl2cii/internal/diagnostic"
	"ubl2cii/internal/ubl"
)

func sampleInvoice() *ubl.Invoice {
	return &ubl.Invoice{
		CustomizationID:      "urn:cen.eu:en16931:2017",
		ID:                   "INV-2024-001",
		IssueDate:            "2024-03-05",
		DueDate:              "2024-04-04",
		InvoiceTypeCode:      "380",
		Note:                 []string{"Thank you for your business", ""},
		DocumentCurrencyCode: "EUR",
		BuyerReference:       "PO-4711",
		OrderReference:       &ubl.OrderReference{ID: "ORDER-1"},
		ContractDocumentReference: []ubl.DocumentReference{
			{ID: "CONTRACT-1"},
		},
		AdditionalDocumentReference: []ubl.DocumentReference{
			{ID: "DOC-1", DocumentTypeCode: "130"},
		},
		ProjectReference: []ubl.ProjectReference{{ID: "PROJECT-9"}},
		AccountingSupplierParty: &ubl.SupplierParty{
			Party: &ubl.Party{
				PartyName:     []ubl.PartyName{{Name: "Seller GmbH"}},
				PostalAddress: &ubl.Address{CityName: "Vienna", Country: &ubl.Country{IdentificationCode: "AT"}},
			},
		},
		AccountingCustomerParty: &ubl.CustomerParty{
			Party: &ubl.Party{
				PartyName:     []ubl.PartyName{{Name: "Buyer AB"}},
				PostalAddress: &ubl.Address{CityName: "Stockholm", Country: &ubl.Country{IdentificationCode: "SE"}},
			},
		},
		PaymentMeans: []ubl.PaymentMeans{
			{
				PaymentMeansCode:      "58",
				PayeeFinancialAccount: &ubl.FinancialAccount{ID: "AT611904300234573201"},
			},
		},
		PaymentTerms: []ubl.PaymentTerms{{Note: []string{"Net 30"}}},
		TaxTotal: []ubl.TaxTotal{
			{
				TaxAmount: &ubl.Amount{CurrencyID: "EUR", Value: "200.00"},
				TaxSubtotal: []ubl.TaxSubtotal{
					{
						TaxableAmount: &ubl.Amount{Value: "1000.00"},
						TaxAmount:     &ubl.Amount{Value: "200.00"},
						TaxCategory:   &ubl.TaxCategory{ID: "S", Percent: "20", TaxScheme: &ubl.TaxScheme{ID: "VAT"}},
					},
				},
			},
		},
		LegalMonetaryTotal: &ubl.MonetaryTotal{
			LineExtensionAmount: &ubl.Amount{Value: "1000.00"},
			TaxExclusiveAmount:  &ubl.Amount{Value: "1000.00"},
			TaxInclusiveAmount:  &ubl.Amount{Value: "1200.00"},
			PayableAmount:       &ubl.Amount{Value: "1200.00"},
		},
		InvoiceLine: []ubl.InvoiceLine{
			{
				ID:                  "1",
				InvoicedQuantity:    &ubl.Quantity{UnitCode: "C62", Value: "10.00"},
				LineExtensionAmount: &ubl.Amount{Value: "1000.00"},
				OrderLineReference:  []ubl.OrderLineReference{{LineID: "1"}},
				Item: &ubl.Item{
					Name: "Widget",
					ClassifiedTaxCategory: []ubl.TaxCategory{
						{ID: "S", Percent: "20", TaxScheme: &ubl.TaxScheme{ID: "VAT"}},
					},
				},
				Price: &ubl.Price{PriceAmount: &ubl.Amount{Value: "100.00"}},
			},
		},
	}
}

func TestInvoice(t *testing.T) {
	sink := &diagnostic.Sink{}
	got, err := Invoice(sampleInvoice(), sink)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, sink.IsValid())

	require.NotNil(t, got.ExchangedDocumentContext)
	require.Len(t, got.ExchangedDocumentContext.GuidelineSpecifiedDocumentContextParameter, 1)
	assert.Equal(t, "urn:cen.eu:en16931:2017",
		got.ExchangedDocumentContext.GuidelineSpecifiedDocumentContextParameter[0].ID)

	doc := got.ExchangedDocument
	require.NotNil(t, doc)
	assert.Equal(t, "INV-2024-001", doc.ID)
	assert.Equal(t, "380", doc.TypeCode)
	require.NotNil(t, doc.IssueDateTime)
	assert.Equal(t, "20240305", doc.IssueDateTime.DateTimeString.Value)
	// Empty notes are dropped.
	require.Len(t, doc.IncludedNote, 1)

	trans := got.SupplyChainTradeTransaction
	require.NotNil(t, trans)
	require.Len(t, trans.IncludedSupplyChainTradeLineItem, 1)

	line := trans.IncludedSupplyChainTradeLineItem[0]
	assert.Equal(t, "1", line.AssociatedDocumentLineDocument.LineID)
	assert.Equal(t, "10.00", line.SpecifiedLineTradeDelivery.BilledQuantity.Value)
	assert.Equal(t, "C62", line.SpecifiedLineTradeDelivery.BilledQuantity.UnitCode)

	agreement := trans.ApplicableHeaderTradeAgreement
	require.NotNil(t, agreement)
	assert.Equal(t, "PO-4711", agreement.BuyerReference)
	assert.Equal(t, "Seller GmbH", agreement.SellerTradeParty.Name)
	assert.Equal(t, "Buyer AB", agreement.BuyerTradeParty.Name)
	require.NotNil(t, agreement.BuyerOrderReferencedDocument)
	assert.Equal(t, "ORDER-1", agreement.BuyerOrderReferencedDocument.IssuerAssignedID)
	require.NotNil(t, agreement.ContractReferencedDocument)
	assert.Equal(t, "CONTRACT-1", agreement.ContractReferencedDocument.IssuerAssignedID)
	require.Len(t, agreement.AdditionalReferencedDocument, 1)
	assert.Equal(t, "130", agreement.AdditionalReferencedDocument[0].TypeCode)
	require.NotNil(t, agreement.SpecifiedProcuringProject)
	assert.Equal(t, "PROJECT-9", agreement.SpecifiedProcuringProject.ID)
	assert.Equal(t, "Project reference", agreement.SpecifiedProcuringProject.Name)

	// The delivery section is present even without source delivery data.
	require.NotNil(t, trans.ApplicableHeaderTradeDelivery)
	assert.Nil(t, trans.ApplicableHeaderTradeDelivery.ShipToTradeParty)

	settlement := trans.ApplicableHeaderTradeSettlement
	require.NotNil(t, settlement)
	assert.Equal(t, "EUR", settlement.InvoiceCurrencyCode)
	require.Len(t, settlement.ApplicableTradeTax, 1)
	require.Len(t, settlement.SpecifiedTradePaymentTerms, 1)
	// The document-level due date wins over the payment means.
	assert.Equal(t, "20240404",
		settlement.SpecifiedTradePaymentTerms[0].DueDateDateTime.DateTimeString.Value)
}

func TestInvoiceDeterministic(t *testing.T) {
	src := sampleInvoice()

	first, err := Invoice(src, &diagnostic.Sink{})
	require.NoError(t, err)
	second, err := Invoice(src, &diagnostic.Sink{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// The source survives a conversion untouched.
	assert.Equal(t, sampleInvoice(), src)
}

func TestInvoiceNilArguments(t *testing.T) {
	_, err := Invoice(nil, &diagnostic.Sink{})
	assert.ErrorIs(t, err, ErrNilDocument)

	_, err = Invoice(sampleInvoice(), nil)
	assert.ErrorIs(t, err, ErrNilSink)
}

func TestInvoiceSurplusEntriesReported(t *testing.T) {
	src := sampleInvoice()
	src.Delivery = []ubl.Delivery{
		{ActualDeliveryDate: "2024-03-01"},
		{ActualDeliveryDate: "2024-03-02"},
	}
	src.ProjectReference = append(src.ProjectReference, ubl.ProjectReference{ID: "PROJECT-10"})

	sink := &diagnostic.Sink{}
	got, err := Invoice(src, sink)
	require.NoError(t, err)

	// Only the first delivery is mapped.
	delivery := got.SupplyChainTradeTransaction.ApplicableHeaderTradeDelivery
	require.NotNil(t, delivery.ActualDeliverySupplyChainEvent)
	assert.Equal(t, "20240301",
		delivery.ActualDeliverySupplyChainEvent.OccurrenceDateTime.DateTimeString.Value)

	var terms []string
	for _, rec := range sink.Infos {
		assert.Equal(t, "first-entry-only", rec.Code)
		terms = append(terms, rec.Term)
	}
	assert.Contains(t, terms, "BG-13")
	assert.Contains(t, terms, "BT-11")
}

func TestInvoiceMinimal(t *testing.T) {
	sink := &diagnostic.Sink{}
	got, err := Invoice(&ubl.Invoice{ID: "X"}, sink)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "X", got.ExchangedDocument.ID)
	assert.Empty(t, got.ExchangedDocumentContext.GuidelineSpecifiedDocumentContextParameter)

	trans := got.SupplyChainTradeTransaction
	require.NotNil(t, trans.ApplicableHeaderTradeAgreement)
	require.NotNil(t, trans.ApplicableHeaderTradeDelivery)
	require.NotNil(t, trans.ApplicableHeaderTradeSettlement)
	require.NotNil(t, trans.ApplicableHeaderTradeSettlement.SpecifiedTradeSettlementHeaderMonetarySummation)
	assert.Empty(t, trans.IncludedSupplyChainTradeLineItem)
}
