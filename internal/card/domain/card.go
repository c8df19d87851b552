package domain

import (
	"strings"
)

// Classification is the issuer and major industry derived from a card number prefix.
// Issuer is nil when no issuer range matches.
type Classification struct {
	Issuer        *string
	MajorIndustry string
}

// IssuerName returns the issuer name or an empty string when unknown.
func (c Classification) IssuerName() string {
	if c.Issuer == nil {
		return ""
	}
	return *c.Issuer
}

// Verification is the outcome of checking a card number's trailing digit.
// CheckDigit is the digit the Luhn formula expects, regardless of Valid.
type Verification struct {
	Valid      bool
	CheckDigit byte
}

// CardReport is the result of validating or generating a card number.
// CardNumber is only set for generated numbers.
type CardReport struct {
	Valid          bool
	MajorIndustry  string
	Issuer         *string
	CardNumber     string
	PersonalDigits string
	CheckDigit     byte
}

// NewCardReport assembles a report for number from its classification and verification.
func NewCardReport(number string, classification Classification, verification Verification) *CardReport {
	return &CardReport{
		Valid:          verification.Valid,
		MajorIndustry:  classification.MajorIndustry,
		Issuer:         classification.Issuer,
		PersonalDigits: PersonalDigits(number),
		CheckDigit:     verification.CheckDigit,
	}
}

// IsDigits reports whether s is non-empty and made only of ASCII decimal digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// PersonalDigits returns the account identifier portion of a card number: everything
// between the seventh position and the check digit. Short numbers yield an empty string.
func PersonalDigits(number string) string {
	if len(number) <= personalDigitsOffset+1 {
		return ""
	}
	return number[personalDigitsOffset : len(number)-1]
}

// MaskCardNumber hides all but the first six and last four digits, for logs.
// Numbers of ten digits or fewer are fully masked.
func MaskCardNumber(number string) string {
	length := len(number)
	if length <= maskedPrefixLength+maskedSuffixLength {
		return strings.Repeat("*", length)
	}

	var masked strings.Builder
	masked.Grow(length)
	masked.WriteString(number[:maskedPrefixLength])
	masked.WriteString(strings.Repeat("*", length-maskedPrefixLength-maskedSuffixLength))
	masked.WriteString(number[length-maskedSuffixLength:])
	return masked.String()
}
