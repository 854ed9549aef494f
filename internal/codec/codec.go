package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/antchfx/xmlquery"

	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// ErrUnknownDocument is returned when the root element is neither an
// invoice nor a credit note.
var ErrUnknownDocument = errors.New("unknown document kind")

// Kind identifies the UBL document type by its root element.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvoice
	KindCreditNote
)

// String returns the root element name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvoice:
		return "Invoice"
	case KindCreditNote:
		return "CreditNote"
	default:
		return "unknown"
	}
}

// DetectKind sniffs the root element of an XML document.
func DetectKind(data []byte) (Kind, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return KindUnknown, fmt.Errorf("parse document: %w", err)
	}

	root := xmlquery.FindOne(doc, "/*")
	if root == nil {
		return KindUnknown, fmt.Errorf("%w: no root element", ErrUnknownDocument)
	}

	switch root.Data {
	case "Invoice":
		return KindInvoice, nil
	case "CreditNote":
		return KindCreditNote, nil
	default:
		return KindUnknown, fmt.Errorf("%w: root element %q", ErrUnknownDocument, root.Data)
	}
}

// DecodeInvoice unmarshals a UBL 2.1 invoice.
func DecodeInvoice(data []byte) (*ubl.Invoice, error) {
	ret := &ubl.Invoice{}
	if err := xml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("decode invoice: %w", err)
	}

	return ret, nil
}

// DecodeCreditNote unmarshals a UBL 2.1 credit note.
func DecodeCreditNote(data []byte) (*ubl.CreditNote, error) {
	ret := &ubl.CreditNote{}
	if err := xml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("decode credit note: %w", err)
	}

	return ret, nil
}

// EncodeCII writes a CII document with the XML declaration. With indent
// set, nested elements are indented by two spaces.
func EncodeCII(w io.Writer, doc *cii.CrossIndustryInvoice, indent bool) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	enc := xml.NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	return enc.Close()
}
