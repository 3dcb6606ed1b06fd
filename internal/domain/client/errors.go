package client

import "errors"

var (
	// ErrClientNotFound indicates the client doesn't exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrDuplicateEmail indicates another client already uses the email.
	ErrDuplicateEmail = errors.New("a client with this email already exists")
	// ErrInvalidInput indicates invalid input for client operations.
	ErrInvalidInput = errors.New("invalid client input")
	// ErrConfirmationMismatch indicates the archive confirmation phrase was wrong.
	ErrConfirmationMismatch = errors.New("confirmation phrase does not match")
)
