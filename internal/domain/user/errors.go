package user

import "errors"

var (
	// ErrUserNotFound indicates the user doesn't exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail indicates another user already uses the email.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrUserArchived indicates the user is archived and cannot change state.
	ErrUserArchived = errors.New("user is archived")
	// ErrInvalidRole indicates a role outside the role enumeration.
	ErrInvalidRole = errors.New("invalid role")
	// ErrConfirmationMismatch indicates the archive confirmation phrase was wrong.
	ErrConfirmationMismatch = errors.New("confirmation phrase does not match")
	// ErrInvalidInput indicates invalid input for user operations.
	ErrInvalidInput = errors.New("invalid user input")
)
