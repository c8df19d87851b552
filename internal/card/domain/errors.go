package domain

import (
	"github.com/allisson/cardengine/internal/errors"
)

var (
	// ErrInvalidCardNumber indicates the card number is empty or contains non-digit characters.
	ErrInvalidCardNumber = errors.Wrap(errors.ErrInvalidInput, "card number must contain only digits")

	// ErrCardNumberTooShort indicates the card number is below the accepted length.
	ErrCardNumberTooShort = errors.Wrap(errors.ErrInvalidInput, "card number is too short")

	// ErrCardNumberTooLong indicates the card number exceeds the accepted length.
	ErrCardNumberTooLong = errors.Wrap(errors.ErrInvalidInput, "card number is too long")

	// ErrInvalidMajorIdentifier indicates the generation prefix is empty or contains non-digit characters.
	ErrInvalidMajorIdentifier = errors.Wrap(
		errors.ErrInvalidInput,
		"major identifier must be a non-empty string of digits",
	)

	// ErrPrefixTooLong indicates the generation prefix leaves no room for the check digit.
	ErrPrefixTooLong = errors.Wrap(errors.ErrInvalidInput, "major identifier is too long for the card variant")

	// ErrInvalidTargetLength indicates a generation length too small to hold a check digit.
	ErrInvalidTargetLength = errors.Wrap(errors.ErrInvalidInput, "target length must be at least 2")

	// ErrUnknownMajorIndustry indicates the leading digit has no major industry entry.
	ErrUnknownMajorIndustry = errors.Wrap(errors.ErrInvalidInput, "unknown major industry identifier")

	// ErrEntropyExhausted indicates generation ran out of random material.
	ErrEntropyExhausted = errors.Wrap(errors.ErrUnavailable, "entropy source exhausted")
)
