// Package http provides HTTP handlers for card number validation, classification and generation.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	"github.com/allisson/cardengine/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardengine/internal/card/usecase"
	"github.com/allisson/cardengine/internal/httputil"
	customValidation "github.com/allisson/cardengine/internal/validation"
)

// CardHandler handles HTTP requests for card number operations.
type CardHandler struct {
	cardUseCase cardUseCase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler with required dependencies.
func NewCardHandler(cardUseCase cardUseCase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// ValidatePathHandler validates the card number given in the URL path.
// GET /v1/cards/validate/:number
// Returns 200 OK with the card report. An incorrect check digit yields valid=false, not an error.
func (h *CardHandler) ValidatePathHandler(c *gin.Context) {
	h.validate(c, c.Param("number"))
}

// ValidateHandler validates the card number given in the JSON body.
// POST /v1/cards/validate
func (h *CardHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateCardRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	h.validate(c, req.CardNumber)
}

func (h *CardHandler) validate(c *gin.Context, cardNumber string) {
	report, err := h.cardUseCase.Validate(c.Request.Context(), cardNumber)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardReportToResponse(report))
}

// GeneratePathHandler generates a card number starting with the prefix given in the URL path.
// GET /v1/cards/generate/:prefix
// Returns 201 Created with the card report including the generated card number.
func (h *CardHandler) GeneratePathHandler(c *gin.Context) {
	h.generate(c, c.Param("prefix"))
}

// GenerateHandler generates a card number starting with the major identifier in the JSON body.
// POST /v1/cards/generate
func (h *CardHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateCardRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	h.generate(c, req.MajorIdentifier)
}

func (h *CardHandler) generate(c *gin.Context, majorIdentifier string) {
	report, err := h.cardUseCase.Generate(c.Request.Context(), majorIdentifier)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCardReportToResponse(report))
}

// GenerateBatchHandler generates several card numbers sharing the prefix in the URL path.
// GET /v1/cards/generate/:prefix/batch?count=N (default 1, max 100)
// Returns 201 Created with all generated card reports. Fails as a whole on the first error.
func (h *CardHandler) GenerateBatchHandler(c *gin.Context) {
	count, err := httputil.ParseCount(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	prefix := c.Param("prefix")
	reports := make([]*cardDomain.CardReport, 0, count)
	for i := 0; i < count; i++ {
		report, err := h.cardUseCase.Generate(c.Request.Context(), prefix)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		reports = append(reports, report)
	}

	c.JSON(http.StatusCreated, dto.MapCardReportsToBatchResponse(reports))
}

// ClassifyHandler returns the issuer and major industry of the card number in the URL path.
// GET /v1/cards/classify/:number
// The check digit is not verified.
func (h *CardHandler) ClassifyHandler(c *gin.Context) {
	classification, err := h.cardUseCase.Classify(c.Request.Context(), c.Param("number"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClassificationToResponse(classification))
}
