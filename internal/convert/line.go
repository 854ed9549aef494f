package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// lineInput is the document-kind-neutral view of one source line. Invoice
// and credit-note lines differ only in the name of the quantity element;
// both assemblers flatten into this shape.
type lineInput struct {
	id                  string
	notes               []string
	quantity            *ubl.Quantity
	lineExtensionAmount *ubl.Amount
	accountingCost      string
	orderLineReferences []ubl.OrderLineReference
	item                *ubl.Item
	price               *ubl.Price
}

// convertLine maps one source line to a supply chain trade line item. The
// item aggregate and billed quantity are schema-mandatory on the source
// side and are not defended against here. The billed quantity is copied
// verbatim, unit code included.
func (c *converter) convertLine(in lineInput) *cii.SupplyChainTradeLineItem {
	lineDoc := &cii.DocumentLineDocument{LineID: in.id}
	for _, note := range in.notes {
		if n := convertNote(note); n != nil {
			lineDoc.IncludedNote = append(lineDoc.IncludedNote, n)
		}
	}

	item := in.item

	product := &cii.TradeProduct{}
	if std := item.StandardItemIdentification; std != nil {
		product.GlobalID = convertID(std.ID)
	}
	if sellers := item.SellersItemIdentification; sellers != nil && sellers.ID != nil {
		product.SellerAssignedID = sellers.ID.Value
	}
	if t := convertText(item.Name); t != nil {
		product.Name = append(product.Name, t)
	}
	if len(item.Description) > 0 {
		product.Description = item.Description[0]
	}
	for _, prop := range item.AdditionalItemProperty {
		// Name and value are independently optional on the property.
		pc := &cii.ProductCharacteristic{}
		if t := convertText(prop.Name); t != nil {
			pc.Description = append(pc.Description, t)
		}
		if t := convertText(prop.Value); t != nil {
			pc.Value = append(pc.Value, t)
		}
		product.ApplicableProductCharacteristic = append(product.ApplicableProductCharacteristic, pc)
	}
	for _, class := range item.CommodityClassification {
		if class.ItemClassificationCode == nil {
			continue
		}
		product.DesignatedProductClassification = append(product.DesignatedProductClassification,
			&cii.ProductClassification{
				ClassCode: &cii.Code{
					ListID: class.ItemClassificationCode.ListID,
					Value:  class.ItemClassificationCode.Value,
				},
			})
	}

	// The order reference and net price wrappers are always present; only
	// their contents depend on the source.
	agreement := &cii.LineTradeAgreement{
		BuyerOrderReferencedDocument: &cii.ReferencedDocument{},
		NetPriceProductTradePrice:    &cii.TradePrice{},
	}
	if len(in.orderLineReferences) > 0 {
		agreement.BuyerOrderReferencedDocument.LineID = in.orderLineReferences[0].LineID
	}
	if in.price != nil && in.price.PriceAmount != nil {
		agreement.NetPriceProductTradePrice.ChargeAmount = append(
			agreement.NetPriceProductTradePrice.ChargeAmount,
			c.amount(in.price.PriceAmount, false))
	}

	delivery := &cii.LineTradeDelivery{
		BilledQuantity: &cii.Quantity{
			UnitCode: in.quantity.UnitCode,
			Value:    in.quantity.Value,
		},
	}

	settlement := &cii.LineTradeSettlement{}
	for _, cat := range item.ClassifiedTaxCategory {
		tax := &cii.TradeTax{
			CategoryCode:          cat.ID,
			RateApplicablePercent: cat.Percent,
		}
		if cat.TaxScheme != nil {
			tax.TypeCode = cat.TaxScheme.ID
		}
		settlement.ApplicableTradeTax = append(settlement.ApplicableTradeTax, tax)
	}
	lineSum := &cii.TradeSettlementLineMonetarySummation{}
	if a := c.amount(in.lineExtensionAmount, false); a != nil {
		lineSum.LineTotalAmount = append(lineSum.LineTotalAmount, a)
	}
	settlement.SpecifiedTradeSettlementLineMonetarySummation = lineSum
	if in.accountingCost != "" {
		settlement.ReceivableSpecifiedTradeAccountingAccount = append(
			settlement.ReceivableSpecifiedTradeAccountingAccount,
			&cii.TradeAccountingAccount{ID: in.accountingCost})
	}

	return &cii.SupplyChainTradeLineItem{
		AssociatedDocumentLineDocument: lineDoc,
		SpecifiedTradeProduct:          product,
		SpecifiedLineTradeAgreement:    agreement,
		SpecifiedLineTradeDelivery:     delivery,
		SpecifiedLineTradeSettlement:   settlement,
	}
}
