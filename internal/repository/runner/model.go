package runner

import "time"

type RunnerProfileDB struct {
	ID              int64
	UserID          int64
	DateOfBirth     string
	Address         string
	IDNumber        string
	VehicleType     string
	City            string
	PreferredRoutes string
	LicensePhoto    string
	IDPhoto         string
	CreatedAt       time.Time
}

type RunnerProfileModifyDB struct {
	ID              *int64
	UserID          *int64
	DateOfBirth     *string
	Address         *string
	IDNumber        *string
	VehicleType     *string
	City            *string
	PreferredRoutes *string
	LicensePhoto    *string
	IDPhoto         *string
}

// RunnerListingDB is a discovery row: user and profile columns plus the
// aggregates computed in SQL.
type RunnerListingDB struct {
	UserID           int64
	FullName         string
	Username         string
	Email            string
	Phone            string
	Profile          RunnerProfileDB
	TotalErrands     int64
	CompletedErrands int64
	AverageRating    float64
}
