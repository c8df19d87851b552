package service

import (
	"fmt"

	"github.com/allisson/cardengine/internal/card/domain"
)

type numberGenerator struct {
	checksum   ChecksumEngine
	classifier IssuerClassifier
}

// NewNumberGenerator creates a generator that keeps numbers Luhn-valid with checksum and
// picks the card variant with classifier.
func NewNumberGenerator(checksum ChecksumEngine, classifier IssuerClassifier) NumberGenerator {
	return &numberGenerator{
		checksum:   checksum,
		classifier: classifier,
	}
}

// Resolve classifies prefix and maps the detected issuer to its card variant.
func (g *numberGenerator) Resolve(prefix string) (domain.Classification, domain.CardVariant, error) {
	if !domain.IsDigits(prefix) {
		return domain.Classification{}, domain.CardVariant{}, domain.ErrInvalidMajorIdentifier
	}

	classification, err := g.classifier.Classify(prefix)
	if err != nil {
		return domain.Classification{}, domain.CardVariant{}, err
	}

	return classification, domain.VariantForIssuer(classification.Issuer), nil
}

// Generate appends one random digit at a time to prefix. After every digit it searches
// the trailing check digit 0..9 that makes the sequence verify, then discards it and draws
// the next digit. Once the sequence is one short of targetLength the found check digit is
// kept. A single digit always exists because the Luhn sum is affine in the last position.
func (g *numberGenerator) Generate(prefix string, targetLength int, entropy EntropySource) (string, error) {
	if targetLength < domain.MinLuhnLength {
		return "", domain.ErrInvalidTargetLength
	}
	if !domain.IsDigits(prefix) {
		return "", domain.ErrInvalidMajorIdentifier
	}
	if len(prefix) > targetLength-1 {
		return "", domain.ErrPrefixTooLong
	}

	sequence := make([]byte, 0, targetLength)
	sequence = append(sequence, prefix...)

	for len(sequence) < targetLength-1 {
		digit, err := entropy.NextDigit()
		if err != nil {
			return "", err
		}
		sequence = append(sequence, digit)

		if _, err := g.repair(sequence); err != nil {
			return "", err
		}
	}

	checkDigit, err := g.repair(sequence)
	if err != nil {
		return "", err
	}

	return string(append(sequence, checkDigit)), nil
}

// repair tries each trailing digit in ascending order and returns the first that verifies.
func (g *numberGenerator) repair(sequence []byte) (byte, error) {
	candidate := make([]byte, len(sequence)+1)
	copy(candidate, sequence)

	for d := byte('0'); d <= '9'; d++ {
		candidate[len(sequence)] = d
		if g.checksum.Verify(string(candidate)) {
			return d, nil
		}
	}

	return 0, fmt.Errorf("no check digit satisfies %q", domain.MaskCardNumber(string(sequence)))
}
