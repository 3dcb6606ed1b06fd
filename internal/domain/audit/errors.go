package audit

import "errors"

// ErrInvalidEvent indicates an event without an action.
var ErrInvalidEvent = errors.New("invalid audit event")
