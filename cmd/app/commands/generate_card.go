package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	cardUseCase "github.com/allisson/cardengine/internal/card/usecase"
)

// MaxGenerateCount caps how many numbers a single generate-card run produces.
const MaxGenerateCount = 1000

// generateConcurrency bounds the goroutines used for batch generation.
const generateConcurrency = 8

// RunGenerateCard generates count Luhn-valid card numbers starting with majorIdentifier.
// The target length follows the issuer detected from the prefix. Numbers are printed in
// generation order; the first failure cancels the rest of the batch.
func RunGenerateCard(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	majorIdentifier string,
	count int,
	format string,
) error {
	if count < 1 || count > MaxGenerateCount {
		return fmt.Errorf("count must be between 1 and %d, got: %d", MaxGenerateCount, count)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	reports := make([]*cardDomain.CardReport, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(generateConcurrency)
	for i := range reports {
		g.Go(func() error {
			report, err := useCase.Generate(gctx, majorIdentifier)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to generate card number: %w", err)
	}

	logger.Info("card numbers generated",
		slog.String("major_identifier", majorIdentifier),
		slog.Int("count", count),
	)

	if format == formatJSON {
		if count == 1 {
			return writeJSON(writer, newCardReportOutput(reports[0]))
		}
		outputs := make([]cardReportOutput, 0, count)
		for _, report := range reports {
			outputs = append(outputs, newCardReportOutput(report))
		}
		return writeJSON(writer, map[string]any{"cards": outputs})
	}

	for i, report := range reports {
		if i > 0 {
			_, _ = fmt.Fprintln(writer)
		}
		writeCardReportText(writer, report)
	}
	return nil
}
