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

func TestRunClassifyCard(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	discover := cardDomain.IssuerDiscover

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockUseCase.On("Classify", ctx, "6011000000").Return(&cardDomain.Classification{
			Issuer:        &discover,
			MajorIndustry: cardDomain.IndustryMerchandising,
		}, nil)

		var out bytes.Buffer
		err := RunClassifyCard(ctx, mockUseCase, logger, &out, "6011000000", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Issuer:          Discover")
		require.Contains(t, out.String(), "Merchandising & Banking/Financial")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output-no-issuer", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockUseCase.On("Classify", ctx, "9123456").Return(&cardDomain.Classification{
			MajorIndustry: cardDomain.IndustryStandardsAssigned,
		}, nil)

		var out bytes.Buffer
		err := RunClassifyCard(ctx, mockUseCase, logger, &out, "9123456", "json")

		require.NoError(t, err)
		require.JSONEq(t, `{"major_industry":"For assignment by standards bodies","issuer":null}`, out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockUseCase.On("Classify", ctx, "0123456").Return(nil, cardDomain.ErrUnknownMajorIndustry)

		err := RunClassifyCard(ctx, mockUseCase, logger, &bytes.Buffer{}, "0123456", "text")

		require.ErrorIs(t, err, cardDomain.ErrUnknownMajorIndustry)
	})
}
