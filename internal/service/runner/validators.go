package runner

import (
	"strings"
	"time"

	"errandgo/internal/entities"
)

const minRunnerAge = 18

func isValidVehicleType(vehicleType string) bool {
	switch entities.VehicleType(vehicleType) {
	case entities.OnFoot, entities.Bicycle, entities.Motorbike, entities.Car, entities.Van:
		return true
	default:
		return false
	}
}

func ageAt(dateOfBirth string, now time.Time) (int, bool) {
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return 0, false
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age, true
}

// cityFromLocation extracts the city from a free-form address. Addresses are
// entered as "street, suburb, city", so the last comma segment wins; an
// address without commas is treated as the city itself.
func cityFromLocation(location string) string {
	parts := strings.Split(location, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}
