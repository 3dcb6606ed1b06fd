package mcp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gloovup/portal/internal/domain/attendance"
	"github.com/gloovup/portal/internal/domain/client"
	"github.com/gloovup/portal/internal/domain/notification"
	"github.com/gloovup/portal/internal/domain/project"
	"github.com/gloovup/portal/internal/domain/renewal"
	"github.com/gloovup/portal/internal/domain/ticket"
	"github.com/gloovup/portal/internal/domain/user"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/validation"
)

var (
	// ErrUnknownMethod is returned for a tool name the handler doesn't serve.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrUnknownEntity is returned for an export or view name that doesn't exist.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrInvalidParams is returned when tool arguments cannot be decoded.
	ErrInvalidParams = errors.New("invalid params")
)

// Error codes.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidInput         = "INVALID_INPUT"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeDuplicateEmail       = "DUPLICATE_EMAIL"
	CodeUserArchived         = "USER_ARCHIVED"
	CodeMethodNotFound       = "METHOD_NOT_FOUND"
	CodeInternal             = "INTERNAL_ERROR"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) CodeValue() string {
	return e.Code
}

func (e *APIError) MessageValue() string {
	return e.Message
}

func (e *APIError) DetailsValue() any {
	return e.Details
}

func (e *APIError) RecoveryHintValue() string {
	return e.RecoveryHint
}

// HTTPStatus is the status an HTTP surface should answer with.
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case CodeNotFound, CodeMethodNotFound:
		return http.StatusNotFound
	case CodeDuplicateEmail, CodeUserArchived:
		return http.StatusConflict
	case CodeInvalidInput, CodeConfirmationRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MapError maps domain errors to MCP error codes. Unrecognized errors map
// to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, ErrUnknownMethod):
		return &APIError{Code: CodeMethodNotFound, Message: err.Error(), RecoveryHint: "Call tools/list for available tools"}
	case errors.Is(err, client.ErrConfirmationMismatch), errors.Is(err, user.ErrConfirmationMismatch):
		return &APIError{Code: CodeConfirmationRequired, Message: err.Error(), RecoveryHint: fmt.Sprintf("Pass confirmation %q exactly", client.ConfirmPhrase)}
	case errors.Is(err, client.ErrDuplicateEmail), errors.Is(err, user.ErrDuplicateEmail):
		return &APIError{Code: CodeDuplicateEmail, Message: err.Error(), RecoveryHint: "Use a different email"}
	case errors.Is(err, user.ErrUserArchived):
		return &APIError{Code: CodeUserArchived, Message: err.Error(), RecoveryHint: "Archived users cannot be reactivated"}
	case isNotFound(err):
		return &APIError{Code: CodeNotFound, Message: err.Error(), RecoveryHint: "Check ID spelling"}
	case isInvalidInput(err):
		e := &APIError{Code: CodeInvalidInput, Message: err.Error()}
		var fe validation.FieldError
		if errors.As(err, &fe) {
			e.Message = fe.Message
			e.Details = map[string]string{"field": fe.Field}
		}
		return e
	default:
		return nil
	}
}

func isNotFound(err error) bool {
	for _, target := range []error{
		ErrUnknownEntity,
		client.ErrClientNotFound,
		project.ErrProjectNotFound,
		ticket.ErrTicketNotFound,
		ticket.ErrAssigneeNotFound,
		user.ErrUserNotFound,
		renewal.ErrRenewalNotFound,
		attendance.ErrLeaveRequestNotFound,
		notification.ErrPreferenceNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isInvalidInput(err error) bool {
	for _, target := range []error{
		ErrInvalidParams,
		listing.ErrUnknownFilter,
		client.ErrInvalidInput,
		project.ErrInvalidInput,
		project.ErrInvalidProgress,
		project.ErrInvalidStatus,
		ticket.ErrInvalidInput,
		ticket.ErrInvalidStatus,
		user.ErrInvalidInput,
		user.ErrInvalidRole,
		renewal.ErrInvalidInput,
		attendance.ErrInvalidInput,
		attendance.ErrInvalidDecision,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
