package dto

import "errandgo/internal/entities"

func FromUser(user *entities.User) User {
	return User{
		ID:       user.ID,
		FullName: user.FullName,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role.String(),
	}
}

func FromRunnerProfile(profile *entities.RunnerProfile) RunnerProfile {
	return RunnerProfile{
		ID:              profile.ID,
		UserID:          profile.UserID,
		DateOfBirth:     profile.DateOfBirth,
		Address:         profile.Address,
		IDNumber:        profile.IDNumber,
		VehicleType:     profile.VehicleType.String(),
		City:            profile.City,
		PreferredRoutes: profile.PreferredRoutes,
		LicensePhoto:    profile.LicensePhoto,
		IDPhoto:         profile.IDPhoto,
	}
}

func FromErrand(errand *entities.Errand) Errand {
	return Errand{
		ID:                   errand.ID,
		ClientID:             errand.ClientID,
		Category:             errand.Category.String(),
		PickupLocation:       errand.PickupLocation,
		DeliveryLocation:     errand.DeliveryLocation,
		Weight:               errand.Weight,
		DeliveryTime:         errand.DeliveryTime,
		Details:              errand.Details,
		PriceEstimate:        errand.PriceEstimate,
		AgreedPrice:          errand.AgreedPrice,
		CalculatedMinimumFee: errand.CalculatedMinimumFee,
		Status:               errand.Status.String(),
		CreatedAt:            TimeRFC3339(errand.CreatedAt),
	}
}

func FromErrandList(errands []entities.Errand) []Errand {
	out := make([]Errand, len(errands))
	for i := range errands {
		out[i] = FromErrand(&errands[i])
	}
	return out
}

func FromNegotiation(negotiation *entities.Negotiation) Negotiation {
	return Negotiation{
		ID:         negotiation.ID,
		ErrandID:   negotiation.ErrandID,
		RunnerID:   negotiation.RunnerID,
		OfferPrice: negotiation.OfferPrice,
		Status:     negotiation.Status.String(),
		CreatedAt:  TimeRFC3339(negotiation.CreatedAt),
	}
}

func FromMessage(message *entities.Message) Message {
	return Message{
		ID:        message.ID,
		ChatID:    message.ChatID,
		SenderID:  message.SenderID,
		Content:   message.Content,
		IsRead:    message.IsRead,
		CreatedAt: TimeRFC3339(message.CreatedAt),
	}
}

func FromRating(rating *entities.Rating) Rating {
	return Rating{
		ID:         rating.ID,
		ErrandID:   rating.ErrandID,
		FromUserID: rating.FromUserID,
		ToUserID:   rating.ToUserID,
		Stars:      rating.Stars,
		Comment:    rating.Comment,
		CreatedAt:  TimeRFC3339(rating.CreatedAt),
	}
}
