package cii

import "encoding/xml"

// CII D16B namespace URIs.
const (
	NamespaceRSM = "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"
	NamespaceRAM = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100"
	NamespaceQDT = "urn:un:unece:uncefact:data:standard:QualifiedDataType:100"
	NamespaceUDT = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100"
)

// DocumentContextParameter is a guideline identifier of the document context.
type DocumentContextParameter struct {
	ID string `xml:"ram:ID,omitempty"`
}

// ExchangedDocumentContext is the document context section.
type ExchangedDocumentContext struct {
	GuidelineSpecifiedDocumentContextParameter []*DocumentContextParameter `xml:"ram:GuidelineSpecifiedDocumentContextParameter"`
}

// ExchangedDocument is the document header section.
type ExchangedDocument struct {
	ID            string    `xml:"ram:ID,omitempty"`
	TypeCode      string    `xml:"ram:TypeCode,omitempty"`
	IssueDateTime *DateTime `xml:"ram:IssueDateTime"`
	IncludedNote  []*Note   `xml:"ram:IncludedNote"`
}

// SupplyChainTradeTransaction is the trade transaction section.
type SupplyChainTradeTransaction struct {
	IncludedSupplyChainTradeLineItem []*SupplyChainTradeLineItem `xml:"ram:IncludedSupplyChainTradeLineItem"`
	ApplicableHeaderTradeAgreement   *HeaderTradeAgreement       `xml:"ram:ApplicableHeaderTradeAgreement"`
	ApplicableHeaderTradeDelivery    *HeaderTradeDelivery        `xml:"ram:ApplicableHeaderTradeDelivery"`
	ApplicableHeaderTradeSettlement  *HeaderTradeSettlement      `xml:"ram:ApplicableHeaderTradeSettlement"`
}

// CrossIndustryInvoice is the CII document root.
type CrossIndustryInvoice struct {
	XMLName xml.Name `xml:"rsm:CrossIndustryInvoice"`

	XmlnsRSM string `xml:"xmlns:rsm,attr"`
	XmlnsRAM string `xml:"xmlns:ram,attr"`
	XmlnsQDT string `xml:"xmlns:qdt,attr"`
	XmlnsUDT string `xml:"xmlns:udt,attr"`

	ExchangedDocumentContext    *ExchangedDocumentContext    `xml:"rsm:ExchangedDocumentContext"`
	ExchangedDocument           *ExchangedDocument           `xml:"rsm:ExchangedDocument"`
	SupplyChainTradeTransaction *SupplyChainTradeTransaction `xml:"rsm:SupplyChainTradeTransaction"`
}

// NewCrossIndustryInvoice returns an empty document with the namespace
// declarations required on the root element.
func NewCrossIndustryInvoice() *CrossIndustryInvoice {
	return &CrossIndustryInvoice{
		XmlnsRSM: NamespaceRSM,
		XmlnsRAM: NamespaceRAM,
		XmlnsQDT: NamespaceQDT,
		XmlnsUDT: NamespaceUDT,
	}
}
