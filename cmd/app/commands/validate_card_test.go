package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	cardMocks "github.com/allisson/cardengine/internal/card/usecase/mocks"
)

func visaReport() *cardDomain.CardReport {
	issuer := cardDomain.IssuerVisa
	return &cardDomain.CardReport{
		Valid:          true,
		MajorIndustry:  cardDomain.IndustryBanking,
		Issuer:         &issuer,
		PersonalDigits: "11111111",
		CheckDigit:     '1',
	}
}

func TestRunValidateCard(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockUseCase.On("Validate", ctx, "4111111111111111").Return(visaReport(), nil)

		var out bytes.Buffer
		err := RunValidateCard(ctx, mockUseCase, logger, &out, "4111111111111111", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Valid:           true")
		require.Contains(t, out.String(), "Issuer:          Visa")
		require.Contains(t, out.String(), "Check digit:     1")
		require.NotContains(t, out.String(), "Card number:")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockUseCase.On("Validate", ctx, "4111111111111111").Return(visaReport(), nil)

		var out bytes.Buffer
		err := RunValidateCard(ctx, mockUseCase, logger, &out, "4111111111111111", "json")

		require.NoError(t, err)
		require.JSONEq(t, `{
			"valid": true,
			"major_industry": "Banking/Financial",
			"issuer": "Visa",
			"personal_digits": "11111111",
			"check_digit": "1"
		}`, out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("no-issuer", func(t *testing.T) {
		report := visaReport()
		report.Issuer = nil
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockUseCase.On("Validate", ctx, "9999999").Return(report, nil)

		var out bytes.Buffer
		err := RunValidateCard(ctx, mockUseCase, logger, &out, "9999999", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Issuer:          none")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockUseCase.On("Validate", ctx, "411111").Return(nil, cardDomain.ErrCardNumberTooShort)

		err := RunValidateCard(ctx, mockUseCase, logger, &bytes.Buffer{}, "411111", "text")

		require.ErrorIs(t, err, cardDomain.ErrCardNumberTooShort)
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		err := RunValidateCard(ctx, mockUseCase, logger, &bytes.Buffer{}, "4111111111111111", "xml")

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
		mockUseCase.AssertNotCalled(t, "Validate")
	})
}
