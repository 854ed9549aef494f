package cii

// Note is a free-text note attached to a document or line.
type Note struct {
	Content []*Text `xml:"ram:Content"`
}

// TradeAddress is a postal address.
type TradeAddress struct {
	PostcodeCode           string  `xml:"ram:PostcodeCode,omitempty"`
	LineOne                string  `xml:"ram:LineOne,omitempty"`
	LineTwo                string  `xml:"ram:LineTwo,omitempty"`
	LineThree              string  `xml:"ram:LineThree,omitempty"`
	CityName               string  `xml:"ram:CityName,omitempty"`
	CountryID              string  `xml:"ram:CountryID,omitempty"`
	CountrySubDivisionName []*Text `xml:"ram:CountrySubDivisionName"`
}

// LegalOrganization is the registered legal identity of a trade party.
type LegalOrganization struct {
	ID                  *IDType       `xml:"ram:ID"`
	TradingBusinessName string        `xml:"ram:TradingBusinessName,omitempty"`
	PostalTradeAddress  *TradeAddress `xml:"ram:PostalTradeAddress"`
}

// UniversalCommunication is an electronic address of a trade party.
type UniversalCommunication struct {
	URIID *IDType `xml:"ram:URIID"`
}

// TaxRegistration is one tax registration of a trade party.
type TaxRegistration struct {
	ID *IDType `xml:"ram:ID"`
}

// TradeParty is a seller, buyer, payee or ship-to party.
type TradeParty struct {
	ID                         []*IDType                 `xml:"ram:ID"`
	Name                       string                    `xml:"ram:Name,omitempty"`
	SpecifiedLegalOrganization *LegalOrganization        `xml:"ram:SpecifiedLegalOrganization"`
	PostalTradeAddress         *TradeAddress             `xml:"ram:PostalTradeAddress"`
	URIUniversalCommunication  []*UniversalCommunication `xml:"ram:URIUniversalCommunication"`
	SpecifiedTaxRegistration   []*TaxRegistration        `xml:"ram:SpecifiedTaxRegistration"`
}

// ReferencedDocument points to a supporting, order, or contract document.
type ReferencedDocument struct {
	IssuerAssignedID       string             `xml:"ram:IssuerAssignedID,omitempty"`
	URIID                  string             `xml:"ram:URIID,omitempty"`
	LineID                 string             `xml:"ram:LineID,omitempty"`
	TypeCode               string             `xml:"ram:TypeCode,omitempty"`
	Name                   []*Text            `xml:"ram:Name"`
	AttachmentBinaryObject []*BinaryObject    `xml:"ram:AttachmentBinaryObject"`
	FormattedIssueDateTime *FormattedDateTime `xml:"ram:FormattedIssueDateTime"`
}

// ProcuringProject is the project a document belongs to.
type ProcuringProject struct {
	ID   string `xml:"ram:ID,omitempty"`
	Name string `xml:"ram:Name,omitempty"`
}

// TradeTax is a per-category tax record, used both at header level
// (aggregated) and at line level.
type TradeTax struct {
	CalculatedAmount      []*Amount `xml:"ram:CalculatedAmount"`
	TypeCode              string    `xml:"ram:TypeCode,omitempty"`
	ExemptionReason       string    `xml:"ram:ExemptionReason,omitempty"`
	BasisAmount           []*Amount `xml:"ram:BasisAmount"`
	CategoryCode          string    `xml:"ram:CategoryCode,omitempty"`
	ExemptionReasonCode   string    `xml:"ram:ExemptionReasonCode,omitempty"`
	TaxPointDate          *Date     `xml:"ram:TaxPointDate"`
	DueDateTypeCode       string    `xml:"ram:DueDateTypeCode,omitempty"`
	RateApplicablePercent string    `xml:"ram:RateApplicablePercent,omitempty"`
}

// TradeAllowanceCharge is a document- or line-level allowance or charge.
type TradeAllowanceCharge struct {
	ChargeIndicator    *Indicator `xml:"ram:ChargeIndicator"`
	CalculationPercent string     `xml:"ram:CalculationPercent,omitempty"`
	BasisAmount        *Amount    `xml:"ram:BasisAmount"`
	ActualAmount       []*Amount  `xml:"ram:ActualAmount"`
	ReasonCode         string     `xml:"ram:ReasonCode,omitempty"`
	Reason             string     `xml:"ram:Reason,omitempty"`
	CategoryTradeTax   *TradeTax  `xml:"ram:CategoryTradeTax"`
}

// TradePaymentTerms carries payment terms descriptions and the due date.
type TradePaymentTerms struct {
	Description     []*Text   `xml:"ram:Description"`
	DueDateDateTime *DateTime `xml:"ram:DueDateDateTime"`
}

// CreditorFinancialAccount identifies the creditor account, typically by IBAN.
type CreditorFinancialAccount struct {
	IBANID string `xml:"ram:IBANID,omitempty"`
}

// TradeSettlementPaymentMeans describes how the document is to be paid.
type TradeSettlementPaymentMeans struct {
	TypeCode                          string                    `xml:"ram:TypeCode,omitempty"`
	PayeePartyCreditorFinancialAccount *CreditorFinancialAccount `xml:"ram:PayeePartyCreditorFinancialAccount"`
}

// SpecifiedPeriod is a billing period.
type SpecifiedPeriod struct {
	StartDateTime *DateTime `xml:"ram:StartDateTime"`
	EndDateTime   *DateTime `xml:"ram:EndDateTime"`
}

// TradeAccountingAccount is a buyer accounting reference.
type TradeAccountingAccount struct {
	ID string `xml:"ram:ID,omitempty"`
}

// TradeSettlementHeaderMonetarySummation carries the document totals.
// Field order is schema-positional: the amounts before the tax totals come
// first, then the currency-qualified tax totals, then the closing amounts.
type TradeSettlementHeaderMonetarySummation struct {
	LineTotalAmount      []*Amount `xml:"ram:LineTotalAmount"`
	ChargeTotalAmount    []*Amount `xml:"ram:ChargeTotalAmount"`
	AllowanceTotalAmount []*Amount `xml:"ram:AllowanceTotalAmount"`
	TaxBasisTotalAmount  []*Amount `xml:"ram:TaxBasisTotalAmount"`
	TaxTotalAmount       []*Amount `xml:"ram:TaxTotalAmount"`
	RoundingAmount       []*Amount `xml:"ram:RoundingAmount"`
	GrandTotalAmount     []*Amount `xml:"ram:GrandTotalAmount"`
	TotalPrepaidAmount   []*Amount `xml:"ram:TotalPrepaidAmount"`
	DuePayableAmount     []*Amount `xml:"ram:DuePayableAmount"`
}

// SupplyChainEvent is a delivery event.
type SupplyChainEvent struct {
	OccurrenceDateTime *DateTime `xml:"ram:OccurrenceDateTime"`
}

// HeaderTradeAgreement is the agreement section of the trade transaction.
type HeaderTradeAgreement struct {
	BuyerReference               string                `xml:"ram:BuyerReference,omitempty"`
	SellerTradeParty             *TradeParty           `xml:"ram:SellerTradeParty"`
	BuyerTradeParty              *TradeParty           `xml:"ram:BuyerTradeParty"`
	BuyerOrderReferencedDocument *ReferencedDocument   `xml:"ram:BuyerOrderReferencedDocument"`
	ContractReferencedDocument   *ReferencedDocument   `xml:"ram:ContractReferencedDocument"`
	AdditionalReferencedDocument []*ReferencedDocument `xml:"ram:AdditionalReferencedDocument"`
	SpecifiedProcuringProject    *ProcuringProject     `xml:"ram:SpecifiedProcuringProject"`
}

// HeaderTradeDelivery is the delivery section of the trade transaction.
// The section is schema-mandatory and is emitted even when empty.
type HeaderTradeDelivery struct {
	ShipToTradeParty               *TradeParty       `xml:"ram:ShipToTradeParty"`
	ActualDeliverySupplyChainEvent *SupplyChainEvent `xml:"ram:ActualDeliverySupplyChainEvent"`
}

// HeaderTradeSettlement is the settlement section of the trade transaction.
type HeaderTradeSettlement struct {
	PaymentReference                       []*Text                                 `xml:"ram:PaymentReference"`
	TaxCurrencyCode                        string                                  `xml:"ram:TaxCurrencyCode,omitempty"`
	InvoiceCurrencyCode                    string                                  `xml:"ram:InvoiceCurrencyCode,omitempty"`
	PayeeTradeParty                        *TradeParty                             `xml:"ram:PayeeTradeParty"`
	SpecifiedTradeSettlementPaymentMeans   []*TradeSettlementPaymentMeans          `xml:"ram:SpecifiedTradeSettlementPaymentMeans"`
	ApplicableTradeTax                     []*TradeTax                             `xml:"ram:ApplicableTradeTax"`
	BillingSpecifiedPeriod                 *SpecifiedPeriod                        `xml:"ram:BillingSpecifiedPeriod"`
	SpecifiedTradeAllowanceCharge          []*TradeAllowanceCharge                 `xml:"ram:SpecifiedTradeAllowanceCharge"`
	SpecifiedTradePaymentTerms             []*TradePaymentTerms                    `xml:"ram:SpecifiedTradePaymentTerms"`
	SpecifiedTradeSettlementHeaderMonetarySummation *TradeSettlementHeaderMonetarySummation `xml:"ram:SpecifiedTradeSettlementHeaderMonetarySummation"`
	ReceivableSpecifiedTradeAccountingAccount []*TradeAccountingAccount            `xml:"ram:ReceivableSpecifiedTradeAccountingAccount"`
}

// DocumentLineDocument carries the line id and notes of a line item.
type DocumentLineDocument struct {
	LineID       string  `xml:"ram:LineID,omitempty"`
	IncludedNote []*Note `xml:"ram:IncludedNote"`
}

// ProductCharacteristic is one name/value property of a product.
type ProductCharacteristic struct {
	Description []*Text `xml:"ram:Description"`
	Value       []*Text `xml:"ram:Value"`
}

// ProductClassification classifies a product within a code list.
type ProductClassification struct {
	ClassCode *Code `xml:"ram:ClassCode"`
}

// TradeProduct describes the invoiced product or service.
type TradeProduct struct {
	GlobalID                        *IDType                  `xml:"ram:GlobalID"`
	SellerAssignedID                string                   `xml:"ram:SellerAssignedID,omitempty"`
	Name                            []*Text                  `xml:"ram:Name"`
	Description                     string                   `xml:"ram:Description,omitempty"`
	ApplicableProductCharacteristic []*ProductCharacteristic `xml:"ram:ApplicableProductCharacteristic"`
	DesignatedProductClassification []*ProductClassification `xml:"ram:DesignatedProductClassification"`
}

// TradePrice is the net price of a line item.
type TradePrice struct {
	ChargeAmount []*Amount `xml:"ram:ChargeAmount"`
}

// LineTradeAgreement is the agreement section of a line item.
type LineTradeAgreement struct {
	BuyerOrderReferencedDocument *ReferencedDocument `xml:"ram:BuyerOrderReferencedDocument"`
	NetPriceProductTradePrice    *TradePrice         `xml:"ram:NetPriceProductTradePrice"`
}

// LineTradeDelivery is the delivery section of a line item.
type LineTradeDelivery struct {
	BilledQuantity *Quantity `xml:"ram:BilledQuantity"`
}

// TradeSettlementLineMonetarySummation carries the line totals.
type TradeSettlementLineMonetarySummation struct {
	LineTotalAmount []*Amount `xml:"ram:LineTotalAmount"`
}

// LineTradeSettlement is the settlement section of a line item.
type LineTradeSettlement struct {
	ApplicableTradeTax                           []*TradeTax                           `xml:"ram:ApplicableTradeTax"`
	SpecifiedTradeSettlementLineMonetarySummation *TradeSettlementLineMonetarySummation `xml:"ram:SpecifiedTradeSettlementLineMonetarySummation"`
	ReceivableSpecifiedTradeAccountingAccount    []*TradeAccountingAccount             `xml:"ram:ReceivableSpecifiedTradeAccountingAccount"`
}

// SupplyChainTradeLineItem is one line item of the trade transaction.
type SupplyChainTradeLineItem struct {
	AssociatedDocumentLineDocument *DocumentLineDocument `xml:"ram:AssociatedDocumentLineDocument"`
	SpecifiedTradeProduct          *TradeProduct         `xml:"ram:SpecifiedTradeProduct"`
	SpecifiedLineTradeAgreement    *LineTradeAgreement   `xml:"ram:SpecifiedLineTradeAgreement"`
	SpecifiedLineTradeDelivery     *LineTradeDelivery    `xml:"ram:SpecifiedLineTradeDelivery"`
	SpecifiedLineTradeSettlement   *LineTradeSettlement  `xml:"ram:SpecifiedLineTradeSettlement"`
}
