package entities

import "time"

// FeeConfig drives the calculated minimum fee: a floor price derived from
// distance, weight, time of day and vehicle type, independent of the
// per-category estimate.
type FeeConfig struct {
	ID                 int64
	BaseFee            float64
	PerKmFee           float64
	PerKgFee           float64
	NightMultiplier    float64
	RushHourMultiplier float64
	VehicleMultipliers map[string]float64
	CreatedAt          time.Time
}
