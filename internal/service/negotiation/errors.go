package negotiation

import "errors"

var (
	ErrNegotiationNotFound   = errors.New("negotiation not found")
	ErrErrandAlreadyAccepted = errors.New("errand has already been accepted")
	ErrErrandNotPending      = errors.New("errand is not open for offers")
	ErrAlreadyOffered        = errors.New("runner already made an offer on this errand")
	ErrInvalidPrice          = errors.New("offer price must be positive")
	ErrForbidden             = errors.New("operation not allowed for this user")
)
