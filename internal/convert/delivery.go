package convert

import (
	"ubl2cii/internal/cii"
	"ubl2cii/internal/ubl"
)

// convertHeaderDelivery maps the delivery section. The section is
// schema-mandatory, so a document without delivery data still yields an
// empty element.
func (c *converter) convertHeaderDelivery(d *ubl.Delivery) *cii.HeaderTradeDelivery {
	ret := &cii.HeaderTradeDelivery{}
	if d == nil {
		return ret
	}

	if loc := d.DeliveryLocation; loc != nil {
		ship := &cii.TradeParty{}
		if id := convertID(loc.ID); id != nil {
			ship.ID = append(ship.ID, id)
		}
		ship.PostalTradeAddress = convertAddress(loc.Address)
		ret.ShipToTradeParty = ship
	}

	if d.ActualDeliveryDate != "" {
		ret.ActualDeliverySupplyChainEvent = &cii.SupplyChainEvent{
			OccurrenceDateTime: c.dateTime(d.ActualDeliveryDate),
		}
	}

	return ret
}
