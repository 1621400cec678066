package runner

import (
	"errandgo/internal/entities"
)

func ToDomain(p *RunnerProfileDB) *entities.RunnerProfile {
	if p == nil {
		return nil
	}

	return &entities.RunnerProfile{
		ID:              p.ID,
		UserID:          p.UserID,
		DateOfBirth:     p.DateOfBirth,
		Address:         p.Address,
		IDNumber:        p.IDNumber,
		VehicleType:     entities.VehicleType(p.VehicleType),
		City:            p.City,
		PreferredRoutes: p.PreferredRoutes,
		LicensePhoto:    p.LicensePhoto,
		IDPhoto:         p.IDPhoto,
		CreatedAt:       p.CreatedAt,
	}
}

func FromDomainModify(profileModify *entities.RunnerProfileModify) *RunnerProfileModifyDB {
	if profileModify == nil {
		return nil
	}
	profileDB := &RunnerProfileModifyDB{}

	if profileModify.ID != nil {
		profileDB.ID = profileModify.ID
	}
	if profileModify.UserID != nil {
		profileDB.UserID = profileModify.UserID
	}
	if profileModify.DateOfBirth != nil {
		profileDB.DateOfBirth = profileModify.DateOfBirth
	}
	if profileModify.Address != nil {
		profileDB.Address = profileModify.Address
	}
	if profileModify.IDNumber != nil {
		profileDB.IDNumber = profileModify.IDNumber
	}
	if profileModify.VehicleType != nil {
		vehicleType := profileModify.VehicleType.String()
		profileDB.VehicleType = &vehicleType
	}
	if profileModify.City != nil {
		profileDB.City = profileModify.City
	}
	if profileModify.PreferredRoutes != nil {
		profileDB.PreferredRoutes = profileModify.PreferredRoutes
	}
	if profileModify.LicensePhoto != nil {
		profileDB.LicensePhoto = profileModify.LicensePhoto
	}
	if profileModify.IDPhoto != nil {
		profileDB.IDPhoto = profileModify.IDPhoto
	}

	return profileDB
}

func ToListingDomain(l *RunnerListingDB) *entities.RunnerListing {
	if l == nil {
		return nil
	}

	return &entities.RunnerListing{
		User: entities.User{
			ID:       l.UserID,
			FullName: l.FullName,
			Username: l.Username,
			Email:    l.Email,
			Phone:    l.Phone,
			Role:     entities.RoleRunner,
		},
		Profile:          *ToDomain(&l.Profile),
		TotalErrands:     l.TotalErrands,
		CompletedErrands: l.CompletedErrands,
		AverageRating:    l.AverageRating,
	}
}

func ToListingDomainList(listingsDB []RunnerListingDB) []entities.RunnerListing {
	if len(listingsDB) == 0 {
		return []entities.RunnerListing{}
	}

	result := make([]entities.RunnerListing, len(listingsDB))
	for i, listingDB := range listingsDB {
		result[i] = *ToListingDomain(&listingDB)
	}
	return result
}
