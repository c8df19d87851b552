// Package domain defines the card number domain: digit sequences, the major industry and
// issuer range tables, card variants and the report records returned to callers.
package domain

// Length constraints for card numbers.
const (
	// MinCardNumberLength is the default shortest card number accepted by validation.
	MinCardNumberLength = 7

	// MaxCardNumberLength is the default longest card number accepted by validation.
	MaxCardNumberLength = 18

	// MinLuhnLength is the shortest sequence the Luhn check can run on (payload + check digit).
	MinLuhnLength = 2

	// DefaultEntropyPoolBytes is the number of random bytes drawn per generation.
	// Hex-encoded, this yields on average 50 decimal digits.
	DefaultEntropyPoolBytes = 40

	// MinEntropyPoolBytes is the smallest configurable pool. It yields on average 40 decimal
	// digits, far above the 17 draws the longest generation can take.
	MinEntropyPoolBytes = 32

	// personalDigitsOffset is where the account identifier starts (after the 6-digit IIN
	// and one reserved position).
	personalDigitsOffset = 7

	// maskedPrefixLength and maskedSuffixLength are the digits left visible by MaskCardNumber.
	maskedPrefixLength = 6
	maskedSuffixLength = 4
)
