package activeerrand

import (
	"errandgo/internal/entities"
)

func ToDomain(a *ActiveErrandDB) *entities.ActiveErrand {
	if a == nil {
		return nil
	}

	return &entities.ActiveErrand{
		ID:                a.ID,
		ErrandID:          a.ErrandID,
		RunnerID:          a.RunnerID,
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
		EstimatedDuration: a.EstimatedDuration,
		Status:            entities.ActiveErrandStatusType(a.Status),
		CreatedAt:         a.CreatedAt,
	}
}

func FromDomainModify(activeModify *entities.ActiveErrandModify) *ActiveErrandModifyDB {
	if activeModify == nil {
		return nil
	}
	activeDB := &ActiveErrandModifyDB{}

	if activeModify.ID != nil {
		activeDB.ID = activeModify.ID
	}
	if activeModify.ErrandID != nil {
		activeDB.ErrandID = activeModify.ErrandID
	}
	if activeModify.RunnerID != nil {
		activeDB.RunnerID = activeModify.RunnerID
	}
	if activeModify.StartTime != nil {
		activeDB.StartTime = activeModify.StartTime
	}
	if activeModify.EndTime != nil {
		activeDB.EndTime = activeModify.EndTime
	}
	if activeModify.EstimatedDuration != nil {
		activeDB.EstimatedDuration = activeModify.EstimatedDuration
	}
	if activeModify.Status != nil {
		status := activeModify.Status.String()
		activeDB.Status = &status
	}

	return activeDB
}

func ToCompletedRecordDomain(c *CompletedRecordDB) *entities.CompletedErrandRecord {
	if c == nil {
		return nil
	}

	return &entities.CompletedErrandRecord{
		Errand: entities.Errand{
			ID:                   c.ErrandID,
			ClientID:             c.ClientID,
			Category:             entities.ErrandCategory(c.Category),
			PickupLocation:       c.PickupLocation,
			DeliveryLocation:     c.DeliveryLocation,
			Weight:               c.Weight,
			DeliveryTime:         c.DeliveryTime,
			Details:              c.Details,
			PriceEstimate:        c.PriceEstimate,
			AgreedPrice:          c.AgreedPrice,
			CalculatedMinimumFee: c.CalculatedMinimumFee,
			Status:               entities.ErrandStatusType(c.Status),
			CreatedAt:            c.CreatedAt,
		},
		Earnings: c.Earnings,
		EndTime:  c.EndTime,
	}
}

func ToCompletedRecordDomainList(recordsDB []CompletedRecordDB) []entities.CompletedErrandRecord {
	if len(recordsDB) == 0 {
		return []entities.CompletedErrandRecord{}
	}

	result := make([]entities.CompletedErrandRecord, len(recordsDB))
	for i, recordDB := range recordsDB {
		result[i] = *ToCompletedRecordDomain(&recordDB)
	}
	return result
}
