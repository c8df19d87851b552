// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	apperrors "github.com/allisson/cardengine/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Digits validates that a string holds only ASCII decimal digits.
// Empty strings pass so that Required decides on presence.
var Digits = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == "" || cardDomain.IsDigits(s)
	},
	validation.NewError("validation_digits", "must contain only digits"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)
