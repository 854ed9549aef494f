package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubl2cii/internal/diagnostic"
	"ubl2cii/internal/ubl"
)

func sampleCreditNote() *ubl.CreditNote {
	return &ubl.CreditNote{
		ID:                   "CN-2024-001",
		IssueDate:            "2024-03-10",
		CreditNoteTypeCode:   "381",
		DocumentCurrencyCode: "EUR",
		AccountingSupplierParty: &ubl.SupplierParty{
			Party: &ubl.Party{PartyName: []ubl.PartyName{{Name: "Seller GmbH"}}},
		},
		AccountingCustomerParty: &ubl.CustomerParty{
			Party: &ubl.Party{PartyName: []ubl.PartyName{{Name: "Buyer AB"}}},
		},
		PaymentMeans: []ubl.PaymentMeans{
			{PaymentMeansCode: "58", PaymentDueDate: "2024-04-10"},
		},
		PaymentTerms: []ubl.PaymentTerms{{Note: []string{"Refund within 30 days"}}},
		LegalMonetaryTotal: &ubl.MonetaryTotal{
			PayableAmount: &ubl.Amount{Value: "240.00"},
		},
		CreditNoteLine: []ubl.CreditNoteLine{
			{
				ID:                  "1",
				CreditedQuantity:    &ubl.Quantity{UnitCode: "C62", Value: "2"},
				LineExtensionAmount: &ubl.Amount{Value: "200.00"},
				Item:                &ubl.Item{Name: "Returned widget"},
			},
		},
	}
}

func TestCreditNote(t *testing.T) {
	sink := &diagnostic.Sink{}
	got, err := CreditNote(sampleCreditNote(), sink)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, sink.IsValid())

	doc := got.ExchangedDocument
	require.NotNil(t, doc)
	assert.Equal(t, "CN-2024-001", doc.ID)
	assert.Equal(t, "381", doc.TypeCode)

	trans := got.SupplyChainTradeTransaction
	require.Len(t, trans.IncludedSupplyChainTradeLineItem, 1)
	line := trans.IncludedSupplyChainTradeLineItem[0]
	assert.Equal(t, "2", line.SpecifiedLineTradeDelivery.BilledQuantity.Value)
	require.Len(t, line.SpecifiedTradeProduct.Name, 1)
	assert.Equal(t, "Returned widget", line.SpecifiedTradeProduct.Name[0].Value)

	require.NotNil(t, trans.ApplicableHeaderTradeDelivery)

	settlement := trans.ApplicableHeaderTradeSettlement
	require.Len(t, settlement.SpecifiedTradePaymentTerms, 1)
	// A credit note has no document-level due date; the payment-means date
	// is the only source.
	require.NotNil(t, settlement.SpecifiedTradePaymentTerms[0].DueDateDateTime)
	assert.Equal(t, "20240410",
		settlement.SpecifiedTradePaymentTerms[0].DueDateDateTime.DateTimeString.Value)
}

func TestCreditNoteNilArguments(t *testing.T) {
	_, err := CreditNote(nil, &diagnostic.Sink{})
	assert.ErrorIs(t, err, ErrNilDocument)

	_, err = CreditNote(sampleCreditNote(), nil)
	assert.ErrorIs(t, err, ErrNilSink)
}

func TestCreditNoteDeterministic(t *testing.T) {
	src := sampleCreditNote()

	first, err := CreditNote(src, &diagnostic.Sink{})
	require.NoError(t, err)
	second, err := CreditNote(src, &diagnostic.Sink{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, sampleCreditNote(), src)
}
