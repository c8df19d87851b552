package service

import (
	"github.com/allisson/cardengine/internal/card/domain"
)

type luhnChecksum struct{}

// NewChecksumEngine creates a Luhn checksum engine.
func NewChecksumEngine() ChecksumEngine {
	return &luhnChecksum{}
}

// CheckDigit walks payload from the right, doubling every digit at an even index
// (subtracting 9 when the product exceeds 9), and returns the last decimal digit of
// nine times the sum. This equals (10 - sum%10) % 10.
func (l *luhnChecksum) CheckDigit(payload string) (byte, error) {
	if payload == "" {
		return 0, domain.ErrInvalidCardNumber
	}

	sum := 0
	length := len(payload)
	for i := 0; i < length; i++ {
		c := payload[length-1-i]
		if c < '0' || c > '9' {
			return 0, domain.ErrInvalidCardNumber
		}

		digit := int(c - '0')
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	return byte('0' + (sum*9)%10), nil
}

// Verify reports whether number ends in its Luhn check digit.
func (l *luhnChecksum) Verify(number string) bool {
	verification, err := l.Inspect(number)
	if err != nil {
		return false
	}
	return verification.Valid
}

// Inspect computes the expected check digit for number and compares it with the last digit.
func (l *luhnChecksum) Inspect(number string) (domain.Verification, error) {
	if len(number) < domain.MinLuhnLength {
		return domain.Verification{}, domain.ErrCardNumberTooShort
	}

	last := number[len(number)-1]
	if last < '0' || last > '9' {
		return domain.Verification{}, domain.ErrInvalidCardNumber
	}

	checkDigit, err := l.CheckDigit(number[:len(number)-1])
	if err != nil {
		return domain.Verification{}, err
	}

	return domain.Verification{
		Valid:      last == checkDigit,
		CheckDigit: checkDigit,
	}, nil
}
