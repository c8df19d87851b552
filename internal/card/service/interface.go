// Package service provides the card number engine: Luhn checksum computation and
// verification, issuer classification and Luhn-valid number generation.
package service

import (
	"github.com/allisson/cardengine/internal/card/domain"
)

// ChecksumEngine computes and verifies Luhn check digits.
type ChecksumEngine interface {
	// CheckDigit returns the check digit for payload, which excludes the check position.
	CheckDigit(payload string) (byte, error)

	// Verify reports whether the trailing digit of number matches its Luhn check digit.
	// Returns false for anything shorter than two characters or containing non-digits.
	Verify(number string) bool

	// Inspect returns both the verdict and the expected check digit for number.
	Inspect(number string) (domain.Verification, error)
}

// IssuerClassifier maps a digit sequence to its issuer and major industry.
type IssuerClassifier interface {
	Classify(number string) (domain.Classification, error)
}

// NumberGenerator builds Luhn-valid card numbers from a prefix.
type NumberGenerator interface {
	// Resolve classifies prefix and returns the card variant that applies to it.
	Resolve(prefix string) (domain.Classification, domain.CardVariant, error)

	// Generate extends prefix with random digits from entropy until it is targetLength long
	// and passes the Luhn check.
	Generate(prefix string, targetLength int, entropy EntropySource) (string, error)
}

// EntropySource supplies random decimal digits ('0'..'9').
type EntropySource interface {
	NextDigit() (byte, error)
}

// EntropyFactory creates a fresh EntropySource for a single generation.
type EntropyFactory func() (EntropySource, error)
