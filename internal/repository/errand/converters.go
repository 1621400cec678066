package errand

import (
	"errandgo/internal/entities"
)

func ToDomain(e *ErrandDB) *entities.Errand {
	if e == nil {
		return nil
	}

	return &entities.Errand{
		ID:                   e.ID,
		ClientID:             e.ClientID,
		Category:             entities.ErrandCategory(e.Category),
		PickupLocation:       e.PickupLocation,
		DeliveryLocation:     e.DeliveryLocation,
		Weight:               e.Weight,
		DeliveryTime:         e.DeliveryTime,
		Details:              e.Details,
		PriceEstimate:        e.PriceEstimate,
		AgreedPrice:          e.AgreedPrice,
		CalculatedMinimumFee: e.CalculatedMinimumFee,
		Status:               entities.ErrandStatusType(e.Status),
		CreatedAt:            e.CreatedAt,
	}
}

func FromDomainModify(errandModify *entities.ErrandModify) *ErrandModifyDB {
	if errandModify == nil {
		return nil
	}
	errandDB := &ErrandModifyDB{}

	if errandModify.ID != nil {
		errandDB.ID = errandModify.ID
	}
	if errandModify.ClientID != nil {
		errandDB.ClientID = errandModify.ClientID
	}
	if errandModify.Category != nil {
		category := errandModify.Category.String()
		errandDB.Category = &category
	}
	if errandModify.PickupLocation != nil {
		errandDB.PickupLocation = errandModify.PickupLocation
	}
	if errandModify.DeliveryLocation != nil {
		errandDB.DeliveryLocation = errandModify.DeliveryLocation
	}
	if errandModify.Weight != nil {
		errandDB.Weight = errandModify.Weight
	}
	if errandModify.DeliveryTime != nil {
		errandDB.DeliveryTime = errandModify.DeliveryTime
	}
	if errandModify.Details != nil {
		errandDB.Details = errandModify.Details
	}
	if errandModify.PriceEstimate != nil {
		errandDB.PriceEstimate = errandModify.PriceEstimate
	}
	if errandModify.AgreedPrice != nil {
		errandDB.AgreedPrice = errandModify.AgreedPrice
	}
	if errandModify.CalculatedMinimumFee != nil {
		errandDB.CalculatedMinimumFee = errandModify.CalculatedMinimumFee
	}
	if errandModify.Status != nil {
		status := errandModify.Status.String()
		errandDB.Status = &status
	}

	return errandDB
}

func ToDomainList(errandsDB []ErrandDB) []entities.Errand {
	if len(errandsDB) == 0 {
		return []entities.Errand{}
	}

	result := make([]entities.Errand, len(errandsDB))
	for i, errandDB := range errandsDB {
		result[i] = *ToDomain(&errandDB)
	}
	return result
}

func ToAvailableDomain(a *AvailableErrandDB) *entities.AvailableErrand {
	if a == nil {
		return nil
	}

	available := &entities.AvailableErrand{
		Errand: *ToDomain(&a.Errand),
		Client: entities.User{
			ID:       a.Errand.ClientID,
			FullName: a.ClientFullName,
			Username: a.ClientUsername,
			Phone:    a.ClientPhone,
			Role:     entities.RoleClient,
		},
		HasOffered: a.OfferStatus != nil,
	}
	if a.OfferStatus != nil {
		status := entities.NegotiationStatusType(*a.OfferStatus)
		available.OfferStatus = &status
	}
	return available
}

func ToAvailableDomainList(availableDB []AvailableErrandDB) []entities.AvailableErrand {
	if len(availableDB) == 0 {
		return []entities.AvailableErrand{}
	}

	result := make([]entities.AvailableErrand, len(availableDB))
	for i, availableRow := range availableDB {
		result[i] = *ToAvailableDomain(&availableRow)
	}
	return result
}
