package convert

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// dateFormatCode is the CII format qualifier for the 8-digit yyyyMMdd form.
const dateFormatCode = "102"

// convertID copies an identifier with its scheme qualifier.
func convertID(id *ubl.ID) *cii.IDType {
	if id == nil {
		return nil
	}

	return &cii.IDType{SchemeID: id.SchemeID, Value: id.Value}
}

// convertText wraps a plain string into a typed text value.
func convertText(s string) *cii.Text {
	if s == "" {
		return nil
	}

	return &cii.Text{Value: s}
}

// convertNote wraps a note string into a note with one content entry.
// A note without text yields nothing.
func convertNote(s string) *cii.Note {
	if s == "" {
		return nil
	}

	return &cii.Note{Content: []*cii.Text{{Value: s}}}
}

// convertAddress maps a postal address. Every sub-field is independently
// optional; only the first free-form address line is mapped, to line three.
func convertAddress(a *ubl.Address) *cii.TradeAddress {
	if a == nil {
		return nil
	}

	ret := &cii.TradeAddress{
		LineOne:      a.StreetName,
		LineTwo:      a.AdditionalStreetName,
		CityName:     a.CityName,
		PostcodeCode: a.PostalZone,
	}
	if len(a.AddressLine) > 0 {
		ret.LineThree = a.AddressLine[0].Line
	}
	if a.CountrySubentity != "" {
		ret.CountrySubDivisionName = append(ret.CountrySubDivisionName, convertText(a.CountrySubentity))
	}
	if a.Country != nil {
		ret.CountryID = a.Country.IdentificationCode
	}

	return ret
}

// amount converts a monetary amount, stripping trailing zeroes. The
// currency code is attached only where the target schema mandates a
// currency-qualified amount (tax totals).
func (c *converter) amount(a *ubl.Amount, withCurrency bool) *cii.Amount {
	if a == nil {
		return nil
	}

	ret := &cii.Amount{Value: c.normalizedNumber(a.Value)}
	if withCurrency {
		ret.CurrencyID = a.CurrencyID
	}

	return ret
}

// normalizedNumber strips trailing zeroes numerically (12.50 -> 12.5,
// 100.00 -> 100, 0.00 -> 0). Unparsable text is copied verbatim with a
// warning; schema-valid input never takes that path.
func (c *converter) normalizedNumber(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		c.diags.AddWarning("amount-not-numeric",
			fmt.Sprintf("amount value %q is not numeric; copied verbatim", raw), "", "")

		return raw
	}

	return stripTrailingZeroes(d).String()
}

// stripTrailingZeroes reduces the coefficient while the fractional part
// ends in zero. This is numeric normalization, not string truncation.
func stripTrailingZeroes(d decimal.Decimal) decimal.Decimal {
	coeff := d.Coefficient()
	if coeff.Sign() == 0 {
		return decimal.New(0, 0)
	}

	exp := d.Exponent()
	ten := big.NewInt(10)
	for exp < 0 {
		q, r := new(big.Int).QuoRem(coeff, ten, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		coeff = q
		exp++
	}

	return decimal.NewFromBigInt(coeff, exp)
}

// dateTime formats a calendar date as a date-time value with format "102".
func (c *converter) dateTime(s string) *cii.DateTime {
	v, ok := c.formattedDate(s)
	if !ok {
		return nil
	}

	return &cii.DateTime{DateTimeString: &cii.FormattedString{Format: dateFormatCode, Value: v}}
}

// date formats a calendar date as a date-only value with format "102".
func (c *converter) date(s string) *cii.Date {
	v, ok := c.formattedDate(s)
	if !ok {
		return nil
	}

	return &cii.Date{DateString: &cii.FormattedString{Format: dateFormatCode, Value: v}}
}

// formattedDate renders a calendar date as the fixed 8-digit yyyyMMdd form.
// The rendering is locale-independent: always Gregorian, no timezone. A
// zone offset suffix on the source date has no CII representation and is
// dropped.
func (c *converter) formattedDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 10 {
		s = s[:10]
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		c.diags.AddWarning("date-not-valid",
			fmt.Sprintf("date value %q is not a calendar date", s), "", "")

		return "", false
	}

	return t.Format("20060102"), true
}
