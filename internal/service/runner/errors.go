package runner

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrUnderage              = errors.New("runner must be an adult")
	ErrProfileNotFound       = errors.New("runner profile not found")
	ErrProfileExists         = errors.New("runner profile already exists")
)
