package ubl

import "encoding/xml"

// CreditNoteLine is one line of a credit note.
type CreditNoteLine struct {
	ID                  string               `xml:"ID"`
	Note                []string             `xml:"Note"`
	CreditedQuantity    *Quantity            `xml:"CreditedQuantity"`
	LineExtensionAmount *Amount              `xml:"LineExtensionAmount"`
	AccountingCost      string               `xml:"AccountingCost"`
	OrderLineReference  []OrderLineReference `xml:"OrderLineReference"`
	Item                *Item                `xml:"Item"`
	Price               *Price               `xml:"Price"`
}

// CreditNote is a UBL 2.1 credit note document. Unlike Invoice it carries no
// document-level due date; the payment-means due date is the only source.
type CreditNote struct {
	XMLName xml.Name `xml:"CreditNote"`

	CustomizationID      string   `xml:"CustomizationID"`
	ID                   string   `xml:"ID"`
	IssueDate            string   `xml:"IssueDate"`
	CreditNoteTypeCode   string   `xml:"CreditNoteTypeCode"`
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
	LegalMonetaryTotal *MonetaryTotal   `xml:"LegalMonetaryTotal"`
	CreditNoteLine     []CreditNoteLine `xml:"CreditNoteLine"`
}
