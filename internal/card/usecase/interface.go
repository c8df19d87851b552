// Package usecase defines interfaces and implementations for card number use cases.
// Provides validation, classification and generation of payment card numbers on top of the card service engine.
package usecase

import (
	"context"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
)

// Config holds the card use case configuration.
type Config struct {
	// MinLength and MaxLength bound the accepted card number length for validation and classification.
	MinLength int
	MaxLength int
}

// CardUseCase defines the interface for card number operations.
type CardUseCase interface {
	// Validate checks the Luhn check digit of cardNumber and classifies it.
	// Returns ErrInvalidCardNumber, ErrCardNumberTooShort, ErrCardNumberTooLong or
	// ErrUnknownMajorIndustry for malformed input. An incorrect check digit is not an error;
	// it is reported through CardReport.Valid.
	Validate(ctx context.Context, cardNumber string) (*cardDomain.CardReport, error)

	// Generate builds a new Luhn-valid card number starting with majorIdentifier.
	// The length follows the card variant of the issuer detected in majorIdentifier.
	// Returns ErrEntropyExhausted when the random source runs out mid-generation.
	Generate(ctx context.Context, majorIdentifier string) (*cardDomain.CardReport, error)

	// Classify returns the issuer and major industry of cardNumber without checking its check digit.
	Classify(ctx context.Context, cardNumber string) (*cardDomain.Classification, error)
}
