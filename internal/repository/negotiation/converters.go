package negotiation

import (
	"errandgo/internal/entities"
)

func ToDomain(n *NegotiationDB) *entities.Negotiation {
	if n == nil {
		return nil
	}

	return &entities.Negotiation{
		ID:         n.ID,
		ErrandID:   n.ErrandID,
		RunnerID:   n.RunnerID,
		OfferPrice: n.OfferPrice,
		Status:     entities.NegotiationStatusType(n.Status),
		CreatedAt:  n.CreatedAt,
	}
}

func FromDomainModify(negotiationModify *entities.NegotiationModify) *NegotiationModifyDB {
	if negotiationModify == nil {
		return nil
	}
	negotiationDB := &NegotiationModifyDB{}

	if negotiationModify.ID != nil {
		negotiationDB.ID = negotiationModify.ID
	}
	if negotiationModify.ErrandID != nil {
		negotiationDB.ErrandID = negotiationModify.ErrandID
	}
	if negotiationModify.RunnerID != nil {
		negotiationDB.RunnerID = negotiationModify.RunnerID
	}
	if negotiationModify.OfferPrice != nil {
		negotiationDB.OfferPrice = negotiationModify.OfferPrice
	}
	if negotiationModify.Status != nil {
		status := negotiationModify.Status.String()
		negotiationDB.Status = &status
	}

	return negotiationDB
}

func ToDomainList(negotiationsDB []NegotiationDB) []entities.Negotiation {
	if len(negotiationsDB) == 0 {
		return []entities.Negotiation{}
	}

	result := make([]entities.Negotiation, len(negotiationsDB))
	for i, negotiationDB := range negotiationsDB {
		result[i] = *ToDomain(&negotiationDB)
	}
	return result
}
