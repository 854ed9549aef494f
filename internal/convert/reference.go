package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// fallbackDocumentTypeCode replaces source type codes that UNTDID 1001 does
// not admit on an additional referenced document.
const fallbackDocumentTypeCode = "916"

// isOriginatorDocumentTypeCode reports whether the code marks a document as
// invoiced-object reference issued by the originator (BT-17 tender or lot).
func isOriginatorDocumentTypeCode(s string) bool {
	return s == "50"
}

// isValidDocumentTypeCode reports whether the code may be copied onto an
// additional referenced document. Only the tender/lot code 50 and the
// invoiced-object code 130 pass; everything else, including an explicit
// 916, falls back to the default.
func isValidDocumentTypeCode(s string) bool {
	return isOriginatorDocumentTypeCode(s) || s == "130"
}

// convertDocumentReference maps one supporting document reference,
// including an optional external URI or embedded attachment. The schema
// intends the two attachment forms as mutually exclusive, but the source is
// copied as found.
func (c *converter) convertDocumentReference(ref ubl.DocumentReference) *cii.ReferencedDocument {
	ret := &cii.ReferencedDocument{IssuerAssignedID: ref.ID}

	if isValidDocumentTypeCode(ref.DocumentTypeCode) {
		ret.TypeCode = ref.DocumentTypeCode
	} else {
		ret.TypeCode = fallbackDocumentTypeCode
	}

	for _, desc := range ref.DocumentDescription {
		ret.Name = append(ret.Name, &cii.Text{
			LanguageID:       desc.LanguageID,
			LanguageLocaleID: desc.LanguageLocaleID,
			Value:            desc.Value,
		})
	}

	if ref.Attachment != nil {
		if ext := ref.Attachment.ExternalReference; ext != nil {
			ret.URIID = ext.URI
		}
		if bin := ref.Attachment.EmbeddedDocumentBinaryObject; bin != nil {
			ret.AttachmentBinaryObject = append(ret.AttachmentBinaryObject, &cii.BinaryObject{
				MimeCode: bin.MimeCode,
				Filename: bin.Filename,
				Value:    bin.Value,
			})
		}
	}

	if ref.IssueDate != "" {
		if v, ok := c.formattedDate(ref.IssueDate); ok {
			ret.FormattedIssueDateTime = &cii.FormattedDateTime{
				DateTimeString: &cii.FormattedString{Format: dateFormatCode, Value: v},
			}
		}
	}

	return ret
}
