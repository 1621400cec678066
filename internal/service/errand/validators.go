package errand

import (
	"errandgo/internal/entities"
)

func isValidCategory(category entities.ErrandCategory) bool {
	switch category {
	case entities.CategoryGrocery,
		entities.CategoryFoodDelivery,
		entities.CategoryPackageDelivery,
		entities.CategoryBillPayments,
		entities.CategoryGadgetService,
		entities.CategoryCollections,
		entities.CategoryTicketBooking,
		entities.CategorySpareParts,
		entities.CategoryGasDelivery,
		entities.CategoryGeneralPurchase,
		entities.CategoryPropertyPurchase,
		entities.CategoryOther:
		return true
	default:
		return false
	}
}
