package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// procuringProjectName is the fixed name EN 16931 mandates for the
// procuring project element, whose source carries only an identifier.
const procuringProjectName = "Project reference"

// headerAgreementInput is the document-kind-neutral view of the agreement
// data of a source document.
type headerAgreementInput struct {
	buyerReference       string
	supplier             *ubl.SupplierParty
	customer             *ubl.CustomerParty
	projectReferences    []ubl.ProjectReference
	orderReference       *ubl.OrderReference
	contractReferences   []ubl.DocumentReference
	additionalReferences []ubl.DocumentReference
}

// convertHeaderAgreement maps the agreement section: the two trade parties,
// order and contract references, additional supporting documents and the
// procuring project. Where the target admits a single entry, the first
// source entry wins and the surplus is reported.
func (c *converter) convertHeaderAgreement(in headerAgreementInput) *cii.HeaderTradeAgreement {
	ret := &cii.HeaderTradeAgreement{BuyerReference: in.buyerReference}

	if in.supplier != nil {
		ret.SellerTradeParty = convertParty(in.supplier.Party)
	}
	if in.customer != nil {
		ret.BuyerTradeParty = convertParty(in.customer.Party)
	}

	if in.orderReference != nil && in.orderReference.ID != "" {
		ret.BuyerOrderReferencedDocument = &cii.ReferencedDocument{IssuerAssignedID: in.orderReference.ID}
	}

	if len(in.contractReferences) > 0 {
		ret.ContractReferencedDocument = &cii.ReferencedDocument{
			IssuerAssignedID: in.contractReferences[0].ID,
		}
		c.noteDiscarded(len(in.contractReferences), "BT-12", "ContractDocumentReference")
	}

	for _, ref := range in.additionalReferences {
		ret.AdditionalReferencedDocument = append(ret.AdditionalReferencedDocument,
			c.convertDocumentReference(ref))
	}

	if len(in.projectReferences) > 0 {
		if id := in.projectReferences[0].ID; id != "" {
			ret.SpecifiedProcuringProject = &cii.ProcuringProject{
				ID:   id,
				Name: procuringProjectName,
			}
		}
		c.noteDiscarded(len(in.projectReferences), "BT-11", "ProjectReference")
	}

	return ret
}
