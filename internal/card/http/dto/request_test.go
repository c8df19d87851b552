package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCardRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := ValidateCardRequest{CardNumber: "4111111111111111"}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_LengthLeftToUseCase", func(t *testing.T) {
		req := ValidateCardRequest{CardNumber: "41"}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_Empty", func(t *testing.T) {
		req := ValidateCardRequest{CardNumber: ""}

		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "card_number")
	})

	t.Run("Error_Blank", func(t *testing.T) {
		req := ValidateCardRequest{CardNumber: "   "}

		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must not contain leading or trailing whitespace")
	})

	t.Run("Error_SurroundingWhitespace", func(t *testing.T) {
		req := ValidateCardRequest{CardNumber: " 4111111111111111\n"}

		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must not contain leading or trailing whitespace")
	})

	t.Run("Error_NonDigit", func(t *testing.T) {
		req := ValidateCardRequest{CardNumber: "4111-1111-1111-1111"}

		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must contain only digits")
	})
}

func TestGenerateCardRequest_Validate(t *testing.T) {
	t.Run("Success_SingleDigit", func(t *testing.T) {
		req := GenerateCardRequest{MajorIdentifier: "4"}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_SixDigits", func(t *testing.T) {
		req := GenerateCardRequest{MajorIdentifier: "622126"}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_Empty", func(t *testing.T) {
		req := GenerateCardRequest{}

		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "major_identifier")
	})

	t.Run("Error_SurroundingWhitespace", func(t *testing.T) {
		req := GenerateCardRequest{MajorIdentifier: "\t37"}

		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must not contain leading or trailing whitespace")
	})

	t.Run("Error_NonDigit", func(t *testing.T) {
		req := GenerateCardRequest{MajorIdentifier: "4a"}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_TooLong", func(t *testing.T) {
		req := GenerateCardRequest{MajorIdentifier: strings.Repeat("4", 18)}

		err := req.Validate()
		assert.Error(t, err)
	})
}
