package ubl

// ID represents an identifier with an optional scheme qualifier.
type ID struct {
	SchemeID string `xml:"schemeID,attr"`
	Value    string `xml:",chardata"`
}

// Amount represents a monetary amount. Value is the literal numeric text.
type Amount struct {
	CurrencyID string `xml:"currencyID,attr"`
	Value      string `xml:",chardata"`
}

// Quantity represents a quantity with a unit code.
type Quantity struct {
	UnitCode string `xml:"unitCode,attr"`
	Value    string `xml:",chardata"`
}

// Code represents a code value with an optional list qualifier.
type Code struct {
	ListID string `xml:"listID,attr"`
	Value  string `xml:",chardata"`
}

// Text represents a text value with optional language qualifiers.
type Text struct {
	LanguageID       string `xml:"languageID,attr"`
	LanguageLocaleID string `xml:"languageLocaleID,attr"`
	Value            string `xml:",chardata"`
}

// Country identifies a country by its identification code.
type Country struct {
	IdentificationCode string `xml:"IdentificationCode"`
}

// AddressLine is one free-form line of an address.
type AddressLine struct {
	Line string `xml:"Line"`
}

// Address represents a postal address.
type Address struct {
	StreetName           string        `xml:"StreetName"`
	AdditionalStreetName string        `xml:"AdditionalStreetName"`
	CityName             string        `xml:"CityName"`
	PostalZone           string        `xml:"PostalZone"`
	CountrySubentity     string        `xml:"CountrySubentity"`
	AddressLine          []AddressLine `xml:"AddressLine"`
	Country              *Country      `xml:"Country"`
}

// Period represents an invoice period.
type Period struct {
	StartDate       string   `xml:"StartDate"`
	EndDate         string   `xml:"EndDate"`
	DescriptionCode []string `xml:"DescriptionCode"`
}

// OrderReference points to the purchase order this document refers to.
type OrderReference struct {
	ID string `xml:"ID"`
}

// OrderLineReference points to one line of the referenced purchase order.
type OrderLineReference struct {
	LineID string `xml:"LineID"`
}

// ProjectReference points to the project this document belongs to.
type ProjectReference struct {
	ID string `xml:"ID"`
}

// ExternalReference carries the URI of an externally stored attachment.
type ExternalReference struct {
	URI string `xml:"URI"`
}

// BinaryObject carries an embedded attachment.
type BinaryObject struct {
	MimeCode string `xml:"mimeCode,attr"`
	Filename string `xml:"filename,attr"`
	Value    string `xml:",chardata"`
}

// Attachment is either an external reference or an embedded binary object.
// The schema intends the two as mutually exclusive; the source is not
// trusted to enforce that.
type Attachment struct {
	ExternalReference            *ExternalReference `xml:"ExternalReference"`
	EmbeddedDocumentBinaryObject *BinaryObject      `xml:"EmbeddedDocumentBinaryObject"`
}

// DocumentReference points to a supporting document.
type DocumentReference struct {
	ID                  string      `xml:"ID"`
	DocumentTypeCode    string      `xml:"DocumentTypeCode"`
	IssueDate           string      `xml:"IssueDate"`
	DocumentDescription []Text      `xml:"DocumentDescription"`
	Attachment          *Attachment `xml:"Attachment"`
}

// TaxScheme identifies a tax scheme, e.g. "VAT".
type TaxScheme struct {
	ID string `xml:"ID"`
}

// TaxCategory represents a tax category within a scheme.
type TaxCategory struct {
	ID                     string     `xml:"ID"`
	Percent                string     `xml:"Percent"`
	TaxExemptionReasonCode string     `xml:"TaxExemptionReasonCode"`
	TaxExemptionReason     []string   `xml:"TaxExemptionReason"`
	TaxScheme              *TaxScheme `xml:"TaxScheme"`
}

// TaxSubtotal is one per-category row of a tax total.
type TaxSubtotal struct {
	TaxableAmount *Amount      `xml:"TaxableAmount"`
	TaxAmount     *Amount      `xml:"TaxAmount"`
	TaxCategory   *TaxCategory `xml:"TaxCategory"`
}

// TaxTotal aggregates the document's tax per grouping.
type TaxTotal struct {
	TaxAmount   *Amount       `xml:"TaxAmount"`
	TaxSubtotal []TaxSubtotal `xml:"TaxSubtotal"`
}

// AllowanceCharge represents a document-level allowance or charge.
type AllowanceCharge struct {
	ChargeIndicator           bool          `xml:"ChargeIndicator"`
	AllowanceChargeReasonCode string        `xml:"AllowanceChargeReasonCode"`
	AllowanceChargeReason     []string      `xml:"AllowanceChargeReason"`
	MultiplierFactorNumeric   string        `xml:"MultiplierFactorNumeric"`
	Amount                    *Amount       `xml:"Amount"`
	BaseAmount                *Amount       `xml:"BaseAmount"`
	TaxCategory               []TaxCategory `xml:"TaxCategory"`
}

// FinancialAccount identifies a payment account, typically by IBAN.
type FinancialAccount struct {
	ID string `xml:"ID"`
}

// PaymentMeans describes how the document is to be paid.
type PaymentMeans struct {
	PaymentMeansCode     string            `xml:"PaymentMeansCode"`
	PaymentDueDate       string            `xml:"PaymentDueDate"`
	PaymentID            []string          `xml:"PaymentID"`
	PayeeFinancialAccount *FinancialAccount `xml:"PayeeFinancialAccount"`
}

// PaymentTerms carries the payment terms notes.
type PaymentTerms struct {
	Note []string `xml:"Note"`
}

// MonetaryTotal carries the document totals. The engine copies these; it
// never recomputes them.
type MonetaryTotal struct {
	LineExtensionAmount   *Amount `xml:"LineExtensionAmount"`
	TaxExclusiveAmount    *Amount `xml:"TaxExclusiveAmount"`
	TaxInclusiveAmount    *Amount `xml:"TaxInclusiveAmount"`
	AllowanceTotalAmount  *Amount `xml:"AllowanceTotalAmount"`
	ChargeTotalAmount     *Amount `xml:"ChargeTotalAmount"`
	PrepaidAmount         *Amount `xml:"PrepaidAmount"`
	PayableRoundingAmount *Amount `xml:"PayableRoundingAmount"`
	PayableAmount         *Amount `xml:"PayableAmount"`
}

// Location is a delivery location.
type Location struct {
	ID      *ID      `xml:"ID"`
	Address *Address `xml:"Address"`
}

// Delivery describes one delivery of the invoiced goods.
type Delivery struct {
	ActualDeliveryDate string    `xml:"ActualDeliveryDate"`
	DeliveryLocation   *Location `xml:"DeliveryLocation"`
}

// ItemIdentification wraps an item identifier.
type ItemIdentification struct {
	ID *ID `xml:"ID"`
}

// ItemProperty is one name/value property of an item.
type ItemProperty struct {
	Name  string `xml:"Name"`
	Value string `xml:"Value"`
}

// CommodityClassification classifies an item within a code list.
type CommodityClassification struct {
	ItemClassificationCode *Code `xml:"ItemClassificationCode"`
}

// Item describes the invoiced product or service.
type Item struct {
	Description                []string                  `xml:"Description"`
	Name                       string                    `xml:"Name"`
	SellersItemIdentification  *ItemIdentification       `xml:"SellersItemIdentification"`
	StandardItemIdentification *ItemIdentification       `xml:"StandardItemIdentification"`
	AdditionalItemProperty     []ItemProperty            `xml:"AdditionalItemProperty"`
	CommodityClassification    []CommodityClassification `xml:"CommodityClassification"`
	ClassifiedTaxCategory      []TaxCategory             `xml:"ClassifiedTaxCategory"`
}

// Price carries the item net price.
type Price struct {
	PriceAmount *Amount `xml:"PriceAmount"`
}
