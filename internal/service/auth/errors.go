package auth

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrPasswordTooShort      = errors.New("password is too short")
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrUnderage              = errors.New("user is under the minimum age")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrUserNotFound          = errors.New("user not found")
	ErrConflict              = errors.New("email, username or phone already registered")
)
