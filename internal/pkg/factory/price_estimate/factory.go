package price_estimate

import (
	"fmt"

	"errandgo/internal/entities"
)

// Input carries the category-specific form fields that feed a price formula.
// Only the fields relevant to the chosen category are read.
type Input struct {
	ItemCount        int
	BudgetLimit      *float64
	DriverTip        float64
	TotalAmount      float64
	Weight           *float64
	Timeframe        string // standard, express, next_day
	Fragility        string // no, yes, very_fragile
	ServiceType      string
	BudgetRange      string
	TotalValue       *float64
	TicketCount      int
	PartCount        int
	FuelType         string
	FuelQuantity     float64
	ItemsTotalValue  float64
	PropertyType     string
	AssemblyRequired bool
	DeliveryTime     string // asap, morning, afternoon, evening
	LuggageSize      string // small, medium, large, xlarge
	Urgency          string // instant, same-day, next-day
}

type PriceFactory struct{}

func New() *PriceFactory {
	return &PriceFactory{}
}

// Estimate computes the quoted price for a category. Formulas are pure
// lookups and linear terms; coefficients are part of the product contract
// and must not drift.
func (f *PriceFactory) Estimate(category entities.ErrandCategory, in Input) (float64, error) {
	switch category {
	case entities.CategoryGrocery:
		return groceryPrice(in), nil
	case entities.CategoryFoodDelivery:
		return foodDeliveryPrice(in), nil
	case entities.CategoryBillPayments:
		return in.TotalAmount, nil
	case entities.CategoryPackageDelivery:
		return packagePrice(in), nil
	case entities.CategoryGadgetService:
		return gadgetServicePrice(in), nil
	case entities.CategoryCollections:
		return collectionsPrice(in), nil
	case entities.CategoryTicketBooking:
		return ticketPrice(in), nil
	case entities.CategorySpareParts:
		return sparePartsPrice(in), nil
	case entities.CategoryGasDelivery:
		return gasPrice(in), nil
	case entities.CategoryGeneralPurchase:
		return generalPurchasePrice(in), nil
	case entities.CategoryPropertyPurchase:
		return propertyPurchasePrice(in), nil
	case entities.CategoryOther:
		return otherServicePrice(in), nil
	default:
		return 0, fmt.Errorf("unknown errand category: %s", category)
	}
}

func groceryPrice(in Input) float64 {
	base := 5.0 + float64(in.ItemCount)*0.5
	if in.BudgetLimit != nil {
		capped := *in.BudgetLimit * 0.1
		if capped < base {
			return capped
		}
	}
	return base
}

func foodDeliveryPrice(in Input) float64 {
	return 3.0 + float64(in.ItemCount)*1.0 + in.DriverTip
}

func packagePrice(in Input) float64 {
	base := 5.0
	if in.Weight != nil {
		base = 5.0 + *in.Weight*0.5
	}
	switch in.Timeframe {
	case "express":
		base *= 1.5
	case "next_day":
		base *= 1.2
	}
	switch in.Fragility {
	case "yes":
		base += 3.0
	case "very_fragile":
		base += 5.0
	}
	return base
}

func gadgetServicePrice(in Input) float64 {
	prices := map[string]float64{
		"diagnostic":          15.0,
		"repair":              25.0,
		"setup":               20.0,
		"data_transfer":       15.0,
		"software_issue":      20.0,
		"purchase_assistance": 10.0,
		"other":               15.0,
	}
	if price, ok := prices[in.ServiceType]; ok {
		return price
	}
	return 15.0
}

func collectionsPrice(in Input) float64 {
	base := 8.0 + float64(in.ItemCount)*0.5
	if in.TotalValue != nil && *in.TotalValue > 100 {
		base += 5.0
	}
	return base
}

func ticketPrice(in Input) float64 {
	ranges := map[string]float64{
		"under_20": 15.0, "20_50": 25.0, "50_100": 40.0,
		"100_200": 60.0, "200_plus": 80.0, "flexible": 30.0,
	}
	base, ok := ranges[in.BudgetRange]
	if !ok {
		base = 20.0
	}
	if in.TicketCount > 0 {
		return base + float64(in.TicketCount)*2.0
	}
	return base
}

func sparePartsPrice(in Input) float64 {
	ranges := map[string]float64{
		"under_50": 10.0, "50_100": 15.0, "100_200": 20.0,
		"200_500": 25.0, "500_plus": 30.0, "flexible": 15.0,
	}
	base, ok := ranges[in.BudgetRange]
	if !ok {
		base = 15.0
	}
	return base + float64(in.PartCount)*1.0
}

func gasPrice(in Input) float64 {
	fuelRates := map[string]float64{
		"petrol": 1.0, "diesel": 0.8, "premium": 1.2,
		"cng": 0.6, "lpg": 0.7, "other": 1.0,
	}
	rate, ok := fuelRates[in.FuelType]
	if !ok {
		rate = 1.0
	}
	return 5.0 + rate*in.FuelQuantity
}

func generalPurchasePrice(in Input) float64 {
	return serviceFee(in.ItemsTotalValue) +
		weightFee(in.Weight) +
		purchaseTimeFee(in.DeliveryTime) +
		0.50
}

func propertyPurchasePrice(in Input) float64 {
	return serviceFee(in.ItemsTotalValue) +
		weightFee(in.Weight) +
		complexityFee(in.PropertyType) +
		assemblyFee(in.PropertyType, in.AssemblyRequired) +
		propertyTimeFee(in.DeliveryTime)
}

func otherServicePrice(in Input) float64 {
	sizes := map[string]float64{"small": 5.0, "medium": 10.0, "large": 15.0, "xlarge": 25.0}
	multipliers := map[string]float64{"instant": 1.5, "same-day": 1.2, "next-day": 1.0}

	base, ok := sizes[in.LuggageSize]
	if !ok {
		base = 5.0
	}
	multiplier, ok := multipliers[in.Urgency]
	if !ok {
		multiplier = 1.0
	}
	return base * multiplier
}

// serviceFee is 15% of the declared item value, clamped to [10, 50].
func serviceFee(itemsTotalValue float64) float64 {
	fee := itemsTotalValue * 0.15
	if fee < 10 {
		fee = 10
	}
	if fee > 50 {
		fee = 50
	}
	return fee
}

func weightFee(weight *float64) float64 {
	if weight == nil {
		return 0
	}
	switch w := *weight; {
	case w <= 50:
		return 3.00
	case w <= 100:
		return 5.00
	case w <= 200:
		return 8.00
	case w <= 500:
		return 15.00
	default:
		return 25.00
	}
}

func purchaseTimeFee(deliveryTime string) float64 {
	switch deliveryTime {
	case "asap":
		return 3.00
	case "morning":
		return 2.50
	case "afternoon":
		return 2.00
	case "evening":
		return 2.75
	default:
		return 0
	}
}

func complexityFee(propertyType string) float64 {
	switch propertyType {
	case "furniture":
		return 10.00
	case "appliance":
		return 8.00
	case "electronics":
		return 5.00
	case "tools":
		return 3.00
	case "decor":
		return 2.00
	default:
		return 4.00
	}
}

func assemblyFee(propertyType string, required bool) float64 {
	if !required {
		return 0
	}
	switch propertyType {
	case "furniture":
		return 15.00
	case "appliance":
		return 20.00
	case "electronics":
		return 10.00
	default:
		return 8.00
	}
}

func propertyTimeFee(deliveryTime string) float64 {
	switch deliveryTime {
	case "asap":
		return 5.00
	case "morning":
		return 4.00
	case "afternoon":
		return 3.50
	case "evening":
		return 4.50
	default:
		return 0
	}
}
