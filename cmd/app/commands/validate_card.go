package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cardUseCase "github.com/allisson/cardengine/internal/card/usecase"
)

// RunValidateCard checks a card number's Luhn check digit and prints its issuer, major
// industry, personal digits and expected check digit. A number that fails the check is
// still reported; only malformed input returns an error.
func RunValidateCard(
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

	report, err := useCase.Validate(ctx, cardNumber)
	if err != nil {
		return fmt.Errorf("failed to validate card number: %w", err)
	}

	logger.Debug("card number validated", slog.Bool("valid", report.Valid))

	if format == formatJSON {
		return writeJSON(writer, newCardReportOutput(report))
	}

	writeCardReportText(writer, report)
	return nil
}
