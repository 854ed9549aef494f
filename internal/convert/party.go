package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// vaSchemeID rewrites the literal tax scheme code "VAT" to "VA", the code
// CII requires on tax registrations. All other scheme codes pass through
// unchanged.
func vaSchemeID(s string) string {
	if s == "VAT" {
		return "VA"
	}

	return s
}

// convertParty maps a trade party: identifiers, display name, legal
// organization, postal address, endpoint and tax registrations.
//
// The target's Name is mandatory: the first party-name entry wins, and only
// when no party name exists does the legal entity's registration name fill
// the gap.
func convertParty(p *ubl.Party) *cii.TradeParty {
	if p == nil {
		return nil
	}

	ret := &cii.TradeParty{}
	for _, pid := range p.PartyIdentification {
		if id := convertID(pid.ID); id != nil {
			ret.ID = append(ret.ID, id)
		}
	}

	if len(p.PartyName) > 0 {
		ret.Name = p.PartyName[0].Name
	}

	if len(p.PartyLegalEntity) > 0 {
		legal := p.PartyLegalEntity[0]

		org := &cii.LegalOrganization{
			TradingBusinessName: legal.RegistrationName,
			ID:                  convertID(legal.CompanyID),
			PostalTradeAddress:  convertAddress(legal.RegistrationAddress),
		}

		if ret.Name == "" {
			// Fill mandatory field
			ret.Name = legal.RegistrationName
		}

		ret.SpecifiedLegalOrganization = org
	}

	ret.PostalTradeAddress = convertAddress(p.PostalAddress)

	if p.EndpointID != nil {
		ret.URIUniversalCommunication = append(ret.URIUniversalCommunication,
			&cii.UniversalCommunication{URIID: convertID(p.EndpointID)})
	}

	for _, scheme := range p.PartyTaxScheme {
		if scheme.CompanyID == nil || scheme.CompanyID.Value == "" {
			continue
		}

		id := convertID(scheme.CompanyID)
		if scheme.TaxScheme != nil {
			// MUST use the "VA" scheme
			if s := vaSchemeID(scheme.TaxScheme.ID); s != "" {
				id.SchemeID = s
			}
		}
		ret.SpecifiedTaxRegistration = append(ret.SpecifiedTaxRegistration, &cii.TaxRegistration{ID: id})
	}

	return ret
}
