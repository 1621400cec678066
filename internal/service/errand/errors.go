package errand

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCategory       = errors.New("invalid errand category")
	ErrErrandNotFound        = errors.New("errand not found")
	ErrActiveErrandNotFound  = errors.New("active errand not found")
	ErrErrandNotAcceptable   = errors.New("errand is no longer available for acceptance")
	ErrFeeConfigNotFound     = errors.New("fee configuration not found")
	ErrForbidden             = errors.New("operation not allowed for this user")
)
