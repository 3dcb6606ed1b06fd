package client

import (
	"fmt"
	"strings"

	"github.com/gloovup/portal/internal/validation"
)

// ValidateCreateInput validates basic create request constraints.
func ValidateCreateInput(req CreateRequest) error {
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, validation.Describe(err))
	}
	return nil
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
