package renewal

import "errors"

var (
	// ErrRenewalNotFound indicates the renewal doesn't exist.
	ErrRenewalNotFound = errors.New("renewal not found")
	// ErrInvalidInput indicates invalid input for renewal operations.
	ErrInvalidInput = errors.New("invalid renewal input")
)
