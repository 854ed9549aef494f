package ubl

// PartyIdentification wraps one party identifier.
type PartyIdentification struct {
	ID *ID `xml:"ID"`
}

// PartyName wraps one party display name.
type PartyName struct {
	Name string `xml:"Name"`
}

// PartyTaxScheme is one tax registration of a party.
type PartyTaxScheme struct {
	CompanyID *ID        `xml:"CompanyID"`
	TaxScheme *TaxScheme `xml:"TaxScheme"`
}

// PartyLegalEntity carries the registered legal identity of a party.
type PartyLegalEntity struct {
	RegistrationName    string   `xml:"RegistrationName"`
	CompanyID           *ID      `xml:"CompanyID"`
	RegistrationAddress *Address `xml:"RegistrationAddress"`
}

// Party represents a trade party: seller, buyer or payee.
type Party struct {
	EndpointID          *ID                   `xml:"EndpointID"`
	PartyIdentification []PartyIdentification `xml:"PartyIdentification"`
	PartyName           []PartyName           `xml:"PartyName"`
	PostalAddress       *Address              `xml:"PostalAddress"`
	PartyTaxScheme      []PartyTaxScheme      `xml:"PartyTaxScheme"`
	PartyLegalEntity    []PartyLegalEntity    `xml:"PartyLegalEntity"`
}

// SupplierParty wraps the accounting supplier party.
type SupplierParty struct {
	Party *Party `xml:"Party"`
}

// CustomerParty wraps the accounting customer party.
type CustomerParty struct {
	Party *Party `xml:"Party"`
}
