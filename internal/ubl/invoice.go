package ubl

import "encoding/xml"

// InvoiceLine is one line of an invoice.
type InvoiceLine struct {
	ID                  string               `xml:"ID"`
	Note                []string             `xml:"Note"`
	InvoicedQuantity    *Quantity            `xml:"InvoicedQuantity"`
	LineExtensionAmount *Amount              `xml:"LineExtensionAmount"`
	AccountingCost      string               `xml:"AccountingCost"`
	OrderLineReference  []OrderLineReference `xml:"OrderLineReference"`
	Item                *Item                `xml:"Item"`
	Price               *Price               `xml:"Price"`
}

// Invoice is a UBL 2.1 invoice document.
type Invoice struct {
	XMLName xml.Name `xml:"Invoice"`

	CustomizationID      string   `xml:"CustomizationID"`
	ID                   string   `xml:"ID"`
	IssueDate            string   `xml:"IssueDate"`
	DueDate              string   `xml:"DueDate"`
	InvoiceTypeCode      string   `xml:"InvoiceTypeCode"`
	Note                 []string `xml:"Note"`
	TaxPointDate         string   `xml:"TaxPointDate"`
	DocumentCurrencyCode string   `xml:"DocumentCurrencyCode"`
	TaxCurrencyCode      string   `xml:"TaxCurrencyCode"`
	AccountingCost       string   `xml:"AccountingCost"`
	BuyerReference       string   `xml:"BuyerReference"`

	InvoicePeriod              []Period            `xml:"InvoicePeriod"`
	OrderReference             *OrderReference     `xml:"OrderReference"`
	ContractDocumentReference  []DocumentReference `xml:"ContractDocumentReference"`
	AdditionalDocumentReference []DocumentReference `xml:"AdditionalDocumentReference"`
	ProjectReference           []ProjectReference  `xml:"ProjectReference"`

	AccountingSupplierParty *SupplierParty `xml:"AccountingSupplierParty"`
	AccountingCustomerParty *CustomerParty `xml:"AccountingCustomerParty"`
	PayeeParty              *Party         `xml:"PayeeParty"`

	Delivery        []Delivery        `xml:"Delivery"`
	PaymentMeans    []PaymentMeans    `xml:"PaymentMeans"`
	PaymentTerms    []PaymentTerms    `xml:"PaymentTerms"`
	AllowanceCharge []AllowanceCharge `xml:"AllowanceCharge"`
	TaxTotal        []TaxTotal        `xml:"TaxTotal"`
	LegalMonetaryTotal *MonetaryTotal `xml:"LegalMonetaryTotal"`
	InvoiceLine        []InvoiceLine  `xml:"InvoiceLine"`
}
