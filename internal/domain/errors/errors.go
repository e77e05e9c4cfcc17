package errors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrCityRefRequired = errors.New("city ref is required")
)
