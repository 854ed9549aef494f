package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubl2cii/internal/ubl"
)

func TestConvertLine(t *testing.T) {
	c, _ := newTestConverter()

	got := c.convertLine(lineInput{
		id:       "42",
		notes:    []string{"handle with care", ""},
		quantity: &ubl.Quantity{UnitCode: "KGM", Value: "2.500"},
		lineExtensionAmount: &ubl.Amount{Value: "125.00"},
		accountingCost:      "COST-7",
		orderLineReferences: []ubl.OrderLineReference{{LineID: "3"}, {LineID: "ignored"}},
		item: &ubl.Item{
			Description:                []string{"First description", "second ignored"},
			Name:                       "Steel bolt",
			SellersItemIdentification:  &ubl.ItemIdentification{ID: &ubl.ID{Value: "SB-01"}},
			StandardItemIdentification: &ubl.ItemIdentification{ID: &ubl.ID{SchemeID: "0160", Value: "1234567890128"}},
			AdditionalItemProperty: []ubl.ItemProperty{
				{Name: "Colour", Value: "Silver"},
			},
			CommodityClassification: []ubl.CommodityClassification{
				{ItemClassificationCode: &ubl.Code{ListID: "STI", Value: "09348023"}},
				{},
			},
			ClassifiedTaxCategory: []ubl.TaxCategory{
				{ID: "S", Percent: "20", TaxScheme: &ubl.TaxScheme{ID: "VAT"}},
			},
		},
		price: &ubl.Price{PriceAmount: &ubl.Amount{Value: "50.00"}},
	})
	require.NotNil(t, got)

	lineDoc := got.AssociatedDocumentLineDocument
	require.NotNil(t, lineDoc)
	assert.Equal(t, "42", lineDoc.LineID)
	require.Len(t, lineDoc.IncludedNote, 1)

	product := got.SpecifiedTradeProduct
	require.NotNil(t, product)
	require.NotNil(t, product.GlobalID)
	assert.Equal(t, "0160", product.GlobalID.SchemeID)
	assert.Equal(t, "SB-01", product.SellerAssignedID)
	require.Len(t, product.Name, 1)
	assert.Equal(t, "Steel bolt", product.Name[0].Value)
	assert.Equal(t, "First description", product.Description)
	require.Len(t, product.ApplicableProductCharacteristic, 1)
	assert.Equal(t, "Colour", product.ApplicableProductCharacteristic[0].Description[0].Value)
	assert.Equal(t, "Silver", product.ApplicableProductCharacteristic[0].Value[0].Value)
	// Classifications without a code are skipped.
	require.Len(t, product.DesignatedProductClassification, 1)
	assert.Equal(t, "STI", product.DesignatedProductClassification[0].ClassCode.ListID)

	agreement := got.SpecifiedLineTradeAgreement
	require.NotNil(t, agreement)
	require.NotNil(t, agreement.BuyerOrderReferencedDocument)
	assert.Equal(t, "3", agreement.BuyerOrderReferencedDocument.LineID)
	require.NotNil(t, agreement.NetPriceProductTradePrice)
	require.Len(t, agreement.NetPriceProductTradePrice.ChargeAmount, 1)
	assert.Equal(t, "50", agreement.NetPriceProductTradePrice.ChargeAmount[0].Value)

	// The billed quantity is copied verbatim, trailing zeroes included.
	delivery := got.SpecifiedLineTradeDelivery
	require.NotNil(t, delivery)
	assert.Equal(t, "2.500", delivery.BilledQuantity.Value)
	assert.Equal(t, "KGM", delivery.BilledQuantity.UnitCode)

	settlement := got.SpecifiedLineTradeSettlement
	require.NotNil(t, settlement)
	require.Len(t, settlement.ApplicableTradeTax, 1)
	assert.Equal(t, "VAT", settlement.ApplicableTradeTax[0].TypeCode)
	assert.Equal(t, "20", settlement.ApplicableTradeTax[0].RateApplicablePercent)
	require.NotNil(t, settlement.SpecifiedTradeSettlementLineMonetarySummation)
	require.Len(t, settlement.SpecifiedTradeSettlementLineMonetarySummation.LineTotalAmount, 1)
	assert.Equal(t, "125", settlement.SpecifiedTradeSettlementLineMonetarySummation.LineTotalAmount[0].Value)
	require.Len(t, settlement.ReceivableSpecifiedTradeAccountingAccount, 1)
	assert.Equal(t, "COST-7", settlement.ReceivableSpecifiedTradeAccountingAccount[0].ID)
}

func TestConvertLineMinimal(t *testing.T) {
	c, _ := newTestConverter()

	got := c.convertLine(lineInput{
		id:       "1",
		quantity: &ubl.Quantity{Value: "1"},
		item:     &ubl.Item{Name: "Thing"},
	})
	require.NotNil(t, got)

	agreement := got.SpecifiedLineTradeAgreement
	require.NotNil(t, agreement)
	// The order reference element exists even without a source reference.
	require.NotNil(t, agreement.BuyerOrderReferencedDocument)
	assert.Empty(t, agreement.BuyerOrderReferencedDocument.LineID)
	// The net price wrapper exists even without a source price.
	require.NotNil(t, agreement.NetPriceProductTradePrice)
	assert.Empty(t, agreement.NetPriceProductTradePrice.ChargeAmount)

	settlement := got.SpecifiedLineTradeSettlement
	require.NotNil(t, settlement.SpecifiedTradeSettlementLineMonetarySummation)
	assert.Empty(t, settlement.SpecifiedTradeSettlementLineMonetarySummation.LineTotalAmount)
	assert.Empty(t, settlement.ReceivableSpecifiedTradeAccountingAccount)
}

func TestConvertLineValuelessItemProperty(t *testing.T) {
	c, _ := newTestConverter()

	got := c.convertLine(lineInput{
		id:       "1",
		quantity: &ubl.Quantity{Value: "1"},
		item: &ubl.Item{
			Name: "Thing",
			AdditionalItemProperty: []ubl.ItemProperty{
				{Name: "Colour"},
				{Value: "Silver"},
			},
		},
	})

	chars := got.SpecifiedTradeProduct.ApplicableProductCharacteristic
	require.Len(t, chars, 2)

	// A property side without text yields no entry, never an empty one.
	require.Len(t, chars[0].Description, 1)
	assert.Equal(t, "Colour", chars[0].Description[0].Value)
	assert.Empty(t, chars[0].Value)

	assert.Empty(t, chars[1].Description)
	require.Len(t, chars[1].Value, 1)
	assert.Equal(t, "Silver", chars[1].Value[0].Value)
}
