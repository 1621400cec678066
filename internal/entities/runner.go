package entities

import "time"

// RunnerProfile holds the runner-only credentials collected during runner
// registration. Exactly one exists per runner user.
type RunnerProfile struct {
	ID              int64
	UserID          int64
	DateOfBirth     string
	Address         string
	IDNumber        string
	VehicleType     VehicleType
	City            string
	PreferredRoutes string
	LicensePhoto    string
	IDPhoto         string
	CreatedAt       time.Time
}

type VehicleType string

const (
	OnFoot    VehicleType = "on_foot"
	Bicycle   VehicleType = "bicycle"
	Motorbike VehicleType = "motorbike"
	Car       VehicleType = "car"
	Van       VehicleType = "van"
)

const DefaultVehicleType = OnFoot

func (v VehicleType) String() string {
	return string(v)
}

type RunnerProfileModify struct {
	ID              *int64
	UserID          *int64
	DateOfBirth     *string
	Address         *string
	IDNumber        *string
	VehicleType     *VehicleType
	City            *string
	PreferredRoutes *string
	LicensePhoto    *string
	IDPhoto         *string
}

// RunnerListing is a discovery row: a runner annotated with the aggregates the
// client sees when choosing who to hire.
type RunnerListing struct {
	User             User
	Profile          RunnerProfile
	TotalErrands     int64
	CompletedErrands int64
	AverageRating    float64
}
