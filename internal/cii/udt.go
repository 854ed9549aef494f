package cii

// Text is a text value with optional language qualifiers.
type Text struct {
	LanguageID       string `xml:"languageID,attr,omitempty"`
	LanguageLocaleID string `xml:"languageLocaleID,attr,omitempty"`
	Value            string `xml:",chardata"`
}

// IDType is an identifier with an optional scheme qualifier.
type IDType struct {
	SchemeID string `xml:"schemeID,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// Amount is a monetary amount; CurrencyID is only set where the schema
// requires a currency-qualified amount.
type Amount struct {
	CurrencyID string `xml:"currencyID,attr,omitempty"`
	Value      string `xml:",chardata"`
}

// Code is a code value with an optional list qualifier.
type Code struct {
	ListID string `xml:"listID,attr,omitempty"`
	Value  string `xml:",chardata"`
}

// Quantity is a quantity with a unit code.
type Quantity struct {
	UnitCode string `xml:"unitCode,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// Indicator is a typed boolean wrapper.
type Indicator struct {
	Value bool `xml:"udt:Indicator"`
}

// BinaryObject is an embedded binary attachment.
type BinaryObject struct {
	MimeCode string `xml:"mimeCode,attr,omitempty"`
	Filename string `xml:"filename,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// FormattedString is a string tagged with a date format code.
type FormattedString struct {
	Format string `xml:"format,attr"`
	Value  string `xml:",chardata"`
}

// DateTime wraps a formatted date-time value.
type DateTime struct {
	DateTimeString *FormattedString `xml:"udt:DateTimeString"`
}

// Date wraps a formatted date-only value.
type Date struct {
	DateString *FormattedString `xml:"udt:DateString"`
}

// FormattedDateTime is the qualified-data-type variant of DateTime used by
// referenced documents.
type FormattedDateTime struct {
	DateTimeString *FormattedString `xml:"qdt:DateTimeString"`
}
