// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/cardengine/internal/app"
	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	"github.com/allisson/cardengine/internal/config"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// DefaultWriter returns the writer commands print their results to.
func DefaultWriter() io.Writer {
	return os.Stdout
}

// LoadContainer loads and validates the configuration and creates the DI container.
func LoadContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return app.NewContainer(cfg), nil
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(writer, string(jsonBytes))
	return err
}

// issuerOrNone renders an optional issuer for text output.
func issuerOrNone(issuer *string) string {
	if issuer == nil {
		return "none"
	}
	return *issuer
}

// cardReportOutput is the JSON shape shared by validate-card and generate-card.
type cardReportOutput struct {
	Valid          bool    `json:"valid"`
	MajorIndustry  string  `json:"major_industry"`
	Issuer         *string `json:"issuer"`
	CardNumber     string  `json:"card_number,omitempty"`
	PersonalDigits string  `json:"personal_digits"`
	CheckDigit     string  `json:"check_digit"`
}

func newCardReportOutput(report *cardDomain.CardReport) cardReportOutput {
	return cardReportOutput{
		Valid:          report.Valid,
		MajorIndustry:  report.MajorIndustry,
		Issuer:         report.Issuer,
		CardNumber:     report.CardNumber,
		PersonalDigits: report.PersonalDigits,
		CheckDigit:     string(report.CheckDigit),
	}
}

// writeCardReportText prints one report in human-readable form.
func writeCardReportText(writer io.Writer, report *cardDomain.CardReport) {
	if report.CardNumber != "" {
		_, _ = fmt.Fprintf(writer, "Card number:     %s\n", report.CardNumber)
	}
	_, _ = fmt.Fprintf(writer, "Valid:           %t\n", report.Valid)
	_, _ = fmt.Fprintf(writer, "Major industry:  %s\n", report.MajorIndustry)
	_, _ = fmt.Fprintf(writer, "Issuer:          %s\n", issuerOrNone(report.Issuer))
	_, _ = fmt.Fprintf(writer, "Personal digits: %s\n", report.PersonalDigits)
	_, _ = fmt.Fprintf(writer, "Check digit:     %c\n", report.CheckDigit)
}
