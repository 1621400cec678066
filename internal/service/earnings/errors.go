package earnings

import "errors"

var ErrInvalidFilter = errors.New("invalid history filter")
