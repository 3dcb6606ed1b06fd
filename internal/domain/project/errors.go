package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidProgress indicates progress outside 0..100.
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	// ErrInvalidStatus indicates a status outside the project enumeration.
	ErrInvalidStatus = errors.New("invalid project status")
	// ErrInvalidInput indicates invalid input for project operations.
	ErrInvalidInput = errors.New("invalid project input")
)
