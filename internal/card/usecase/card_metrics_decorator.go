package usecase

import (
	"context"
	"time"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	"github.com/allisson/cardengine/internal/metrics"
)

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cardUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "card", operation, status)
	c.metrics.RecordDuration(ctx, "card", operation, time.Since(start), status)
}

func (c *cardUseCaseWithMetrics) recordResult(ctx context.Context, operation string, report *cardDomain.CardReport) {
	if report == nil {
		return
	}
	issuer := ""
	if report.Issuer != nil {
		issuer = *report.Issuer
	}
	c.metrics.RecordCardResult(ctx, operation, issuer, report.Valid)
}

// Validate records metrics for card validation operations.
func (c *cardUseCaseWithMetrics) Validate(ctx context.Context, cardNumber string) (*cardDomain.CardReport, error) {
	start := time.Now()
	report, err := c.next.Validate(ctx, cardNumber)
	c.record(ctx, "validate", start, err)
	c.recordResult(ctx, "validate", report)
	return report, err
}

// Generate records metrics for card generation operations.
func (c *cardUseCaseWithMetrics) Generate(
	ctx context.Context,
	majorIdentifier string,
) (*cardDomain.CardReport, error) {
	start := time.Now()
	report, err := c.next.Generate(ctx, majorIdentifier)
	c.record(ctx, "generate", start, err)
	c.recordResult(ctx, "generate", report)
	return report, err
}

// Classify records metrics for card classification operations.
func (c *cardUseCaseWithMetrics) Classify(
	ctx context.Context,
	cardNumber string,
) (*cardDomain.Classification, error) {
	start := time.Now()
	classification, err := c.next.Classify(ctx, cardNumber)
	c.record(ctx, "classify", start, err)
	return classification, err
}
