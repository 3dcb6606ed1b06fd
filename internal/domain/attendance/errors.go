package attendance

import "errors"

var (
	// ErrLeaveRequestNotFound indicates the leave request doesn't exist.
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	// ErrInvalidDecision indicates a decision other than Approve or Reject.
	ErrInvalidDecision = errors.New("invalid leave decision")
	// ErrInvalidInput indicates invalid input for attendance operations.
	ErrInvalidInput = errors.New("invalid attendance input")
)
