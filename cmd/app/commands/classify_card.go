package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cardUseCase "github.com/allisson/cardengine/internal/card/usecase"
)

// RunClassifyCard prints the issuer and major industry of a digit sequence without
// checking its Luhn digit.
func RunClassifyCard(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	cardNumber string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	classification, err := useCase.Classify(ctx, cardNumber)
	if err != nil {
		return fmt.Errorf("failed to classify card number: %w", err)
	}

	logger.Debug("card number classified", slog.String("issuer", issuerOrNone(classification.Issuer)))

	if format == formatJSON {
		return writeJSON(writer, map[string]any{
			"major_industry": classification.MajorIndustry,
			"issuer":         classification.Issuer,
		})
	}

	_, _ = fmt.Fprintf(writer, "Major industry:  %s\n", classification.MajorIndustry)
	_, _ = fmt.Fprintf(writer, "Issuer:          %s\n", issuerOrNone(classification.Issuer))
	return nil
}
