package ticket

import "errors"

var (
	// ErrTicketNotFound indicates the ticket doesn't exist.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrAssigneeNotFound indicates the assignee is unknown or cannot take tickets.
	ErrAssigneeNotFound = errors.New("assignee not found or not assignable")
	// ErrInvalidStatus indicates a status outside the ticket enumeration.
	ErrInvalidStatus = errors.New("invalid ticket status")
	// ErrInvalidInput indicates invalid input for ticket operations.
	ErrInvalidInput = errors.New("invalid ticket input")
)
