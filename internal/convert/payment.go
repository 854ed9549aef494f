package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// convertPaymentTerms maps one payment terms block. The document-level due
// date takes priority over the payment-means due date; the latter fills in
// only when no document-level date exists.
func (c *converter) convertPaymentTerms(terms ubl.PaymentTerms, means *ubl.PaymentMeans, dueDate string) *cii.TradePaymentTerms {
	ret := &cii.TradePaymentTerms{}
	for _, note := range terms.Note {
		if t := convertText(note); t != nil {
			ret.Description = append(ret.Description, t)
		}
	}

	switch {
	case dueDate != "":
		ret.DueDateDateTime = c.dateTime(dueDate)
	case means != nil && means.PaymentDueDate != "":
		ret.DueDateDateTime = c.dateTime(means.PaymentDueDate)
	}

	return ret
}
