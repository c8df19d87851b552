package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardengine/internal/card/domain"
	"github.com/allisson/cardengine/internal/errors"
)

// sequenceSource hands out digits in order and then reports exhaustion.
type sequenceSource struct {
	digits string
	pos    int
}

func (s *sequenceSource) NextDigit() (byte, error) {
	if s.pos >= len(s.digits) {
		return 0, domain.ErrEntropyExhausted
	}
	digit := s.digits[s.pos]
	s.pos++
	return digit, nil
}

func newTestGenerator() NumberGenerator {
	return NewNumberGenerator(NewChecksumEngine(), NewIssuerClassifier())
}

func TestNumberGenerator_Generate_Deterministic(t *testing.T) {
	gen := newTestGenerator()
	source := &sequenceSource{digits: "12345678901234"}

	number, err := gen.Generate("4", 16, source)

	require.NoError(t, err)
	assert.Equal(t, "4123456789012349", number)
	assert.Equal(t, len(source.digits), source.pos)
}

func TestNumberGenerator_Generate_Variants(t *testing.T) {
	gen := newTestGenerator()
	checksum := NewChecksumEngine()

	tests := []struct {
		name   string
		prefix string
		length int
	}{
		{name: "Visa_Default16", prefix: "4", length: 16},
		{name: "AmericanExpress_15", prefix: "34", length: 15},
		{name: "DinersClub_14", prefix: "30", length: 14},
		{name: "Discover_16", prefix: "6011", length: 16},
		{name: "UnknownIssuer_16", prefix: "9", length: 16},
		{name: "LongPrefix", prefix: "41111111111111", length: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, variant, err := gen.Resolve(tt.prefix)
			require.NoError(t, err)
			require.Equal(t, tt.length, variant.TargetLength)

			pool, err := NewDigitPool(rand.Reader, domain.DefaultEntropyPoolBytes*4)
			require.NoError(t, err)

			number, err := gen.Generate(tt.prefix, variant.TargetLength, pool)

			require.NoError(t, err)
			assert.Len(t, number, tt.length)
			assert.Equal(t, tt.prefix, number[:len(tt.prefix)])
			assert.True(t, domain.IsDigits(number))
			assert.True(t, checksum.Verify(number), "generated number %s must verify", number)
		})
	}
}

func TestNumberGenerator_Generate_PrefixFillsPayload(t *testing.T) {
	gen := newTestGenerator()
	source := &sequenceSource{}

	number, err := gen.Generate("411111111111111", 16, source)

	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", number)
	assert.Zero(t, source.pos)
}

func TestNumberGenerator_Generate_Errors(t *testing.T) {
	gen := newTestGenerator()

	tests := []struct {
		name   string
		prefix string
		length int
		source EntropySource
		err    error
	}{
		{name: "Error_EmptyPrefix", prefix: "", length: 16, source: &sequenceSource{}, err: domain.ErrInvalidMajorIdentifier},
		{name: "Error_NonDigitPrefix", prefix: "4a", length: 16, source: &sequenceSource{}, err: domain.ErrInvalidMajorIdentifier},
		{name: "Error_PrefixTooLong", prefix: "4111111111111111", length: 16, source: &sequenceSource{}, err: domain.ErrPrefixTooLong},
		{name: "Error_TargetTooShort", prefix: "4", length: 1, source: &sequenceSource{}, err: domain.ErrInvalidTargetLength},
		{name: "Error_EntropyExhausted", prefix: "4", length: 16, source: &sequenceSource{digits: "123"}, err: domain.ErrEntropyExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, err := gen.Generate(tt.prefix, tt.length, tt.source)

			assert.Empty(t, number)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNumberGenerator_Generate_ExhaustionIsUnavailable(t *testing.T) {
	gen := newTestGenerator()

	_, err := gen.Generate("34", 15, &sequenceSource{digits: "00000"})

	assert.ErrorIs(t, err, errors.ErrUnavailable)
}

func TestNumberGenerator_Resolve(t *testing.T) {
	gen := newTestGenerator()

	t.Run("Success_AmericanExpress", func(t *testing.T) {
		classification, variant, err := gen.Resolve("37")

		require.NoError(t, err)
		assert.Equal(t, domain.IssuerAmericanExpress, classification.IssuerName())
		assert.Equal(t, domain.IndustryTravel, classification.MajorIndustry)
		assert.Equal(t, domain.VariantAmericanExpress, variant)
	})

	t.Run("Success_NoIssuerUsesDefault", func(t *testing.T) {
		classification, variant, err := gen.Resolve("1")

		require.NoError(t, err)
		assert.Nil(t, classification.Issuer)
		assert.Equal(t, domain.IndustryAirline, classification.MajorIndustry)
		assert.Equal(t, domain.VariantDefault, variant)
	})

	t.Run("Error_LeadingZero", func(t *testing.T) {
		_, _, err := gen.Resolve("0")

		assert.ErrorIs(t, err, domain.ErrUnknownMajorIndustry)
	})

	t.Run("Error_NonDigit", func(t *testing.T) {
		_, _, err := gen.Resolve("x")

		assert.ErrorIs(t, err, domain.ErrInvalidMajorIdentifier)
	})
}

func TestNumberGenerator_Generate_MinimumPoolNeverExhausts(t *testing.T) {
	gen := newTestGenerator()
	checksum := NewChecksumEngine()
	factory := NewDigitPoolFactory(nil, domain.MinEntropyPoolBytes)

	for i := 0; i < 1000; i++ {
		source, err := factory()
		require.NoError(t, err)

		number, err := gen.Generate("4", 16, source)
		require.NoError(t, err, "generation %d", i)
		require.True(t, checksum.Verify(number))
	}
}
