// Package validation wraps go-playground/validator with the portal's custom tags.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Enum is implemented by closed enumerations such as statuses and roles.
type Enum interface {
	Valid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// enum accepts any field whose type reports its own membership.
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(Enum)
		return ok && e.Valid()
	})
	// phone counts digits, ignoring formatting such as "+1 (555) 123-4567".
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return Digits(fl.Field().String()) >= MinPhoneDigits
	})
	return v
}

// MinPhoneDigits is the shortest accepted phone number.
const MinPhoneDigits = 10

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// Var validates a single value against tag.
func Var(v any, tag string) error {
	return validate.Var(v, tag)
}

// Digits counts the decimal digits in s.
func Digits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// FieldError is one failed constraint, phrased for display.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// Describe converts the first validator failure in err into a FieldError.
// Errors that did not come from the validator are returned unchanged.
func Describe(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	field := strings.ToLower(fe.Field())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "email":
		msg = "Please enter a valid email address."
	case "phone":
		msg = "Please enter a valid phone number."
	case "enum", "oneof":
		msg = fmt.Sprintf("%s %q is not an allowed value", field, fmt.Sprint(fe.Value()))
	case "min":
		msg = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gte", "lte":
		msg = fmt.Sprintf("%s is out of range", field)
	default:
		msg = fmt.Sprintf("%s is invalid", field)
	}
	return FieldError{Field: field, Message: msg}
}
