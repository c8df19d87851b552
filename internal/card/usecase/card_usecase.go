// Package usecase implements card number business logic.
//
// Coordinates the checksum engine, issuer classifier and number generator, and enforces the
// configured length bounds on incoming card numbers.
package usecase

import (
	"context"
	"log/slog"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	cardService "github.com/allisson/cardengine/internal/card/service"
	apperrors "github.com/allisson/cardengine/internal/errors"
)

// cardUseCase implements CardUseCase.
type cardUseCase struct {
	config     Config
	checksum   cardService.ChecksumEngine
	classifier cardService.IssuerClassifier
	generator  cardService.NumberGenerator
	entropy    cardService.EntropyFactory
	logger     *slog.Logger
}

// NewCardUseCase creates a new CardUseCase.
func NewCardUseCase(
	config Config,
	checksum cardService.ChecksumEngine,
	classifier cardService.IssuerClassifier,
	generator cardService.NumberGenerator,
	entropy cardService.EntropyFactory,
	logger *slog.Logger,
) CardUseCase {
	return &cardUseCase{
		config:     config,
		checksum:   checksum,
		classifier: classifier,
		generator:  generator,
		entropy:    entropy,
		logger:     logger,
	}
}

// checkCardNumber enforces the digit and length preconditions shared by Validate and Classify.
func (c *cardUseCase) checkCardNumber(cardNumber string) error {
	if !cardDomain.IsDigits(cardNumber) {
		return cardDomain.ErrInvalidCardNumber
	}
	if len(cardNumber) < c.config.MinLength {
		return cardDomain.ErrCardNumberTooShort
	}
	if len(cardNumber) > c.config.MaxLength {
		return cardDomain.ErrCardNumberTooLong
	}
	return nil
}

// Validate checks the card number and reports its classification and check digit.
func (c *cardUseCase) Validate(ctx context.Context, cardNumber string) (*cardDomain.CardReport, error) {
	if err := c.checkCardNumber(cardNumber); err != nil {
		return nil, err
	}

	classification, err := c.classifier.Classify(cardNumber)
	if err != nil {
		return nil, err
	}

	verification, err := c.checksum.Inspect(cardNumber)
	if err != nil {
		return nil, err
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "card number validated",
			slog.String("card_number", cardDomain.MaskCardNumber(cardNumber)),
			slog.Bool("valid", verification.Valid),
			slog.String("issuer", classification.IssuerName()),
		)
	}

	return cardDomain.NewCardReport(cardNumber, classification, verification), nil
}

// Generate resolves the card variant from majorIdentifier and generates a number of that length.
// The reported issuer is the one detected in majorIdentifier.
func (c *cardUseCase) Generate(ctx context.Context, majorIdentifier string) (*cardDomain.CardReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	classification, variant, err := c.generator.Resolve(majorIdentifier)
	if err != nil {
		return nil, err
	}
	if len(majorIdentifier) > variant.TargetLength-1 {
		return nil, cardDomain.ErrPrefixTooLong
	}

	entropy, err := c.entropy()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to prepare entropy source")
	}

	cardNumber, err := c.generator.Generate(majorIdentifier, variant.TargetLength, entropy)
	if err != nil {
		return nil, err
	}

	verification, err := c.checksum.Inspect(cardNumber)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to verify generated card number")
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "card number generated",
			slog.String("card_number", cardDomain.MaskCardNumber(cardNumber)),
			slog.Int("length", variant.TargetLength),
			slog.String("issuer", classification.IssuerName()),
		)
	}

	report := cardDomain.NewCardReport(cardNumber, classification, verification)
	report.CardNumber = cardNumber
	return report, nil
}

// Classify checks the card number and returns its issuer and major industry.
func (c *cardUseCase) Classify(ctx context.Context, cardNumber string) (*cardDomain.Classification, error) {
	if err := c.checkCardNumber(cardNumber); err != nil {
		return nil, err
	}

	classification, err := c.classifier.Classify(cardNumber)
	if err != nil {
		return nil, err
	}

	return &classification, nil
}
