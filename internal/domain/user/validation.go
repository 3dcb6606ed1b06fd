package user

import (
	"fmt"

	"github.com/gloovup/portal/internal/validation"
)

// ValidateCreateInput validates basic create request constraints.
func ValidateCreateInput(req CreateRequest) error {
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, validation.Describe(err))
	}
	return nil
}
