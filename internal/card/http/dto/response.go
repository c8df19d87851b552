package dto

import (
	cardDomain "github.com/allisson/cardengine/internal/card/domain"
)

// CardReportResponse represents a validated or generated card number in API responses.
type CardReportResponse struct {
	Valid          bool    `json:"valid"`
	MajorIndustry  string  `json:"major_industry"`
	Issuer         *string `json:"issuer"`
	CardNumber     string  `json:"card_number,omitempty"`
	PersonalDigits string  `json:"personal_digits"`
	CheckDigit     string  `json:"check_digit"`
}

// MapCardReportToResponse converts a domain card report to an API response.
func MapCardReportToResponse(report *cardDomain.CardReport) CardReportResponse {
	return CardReportResponse{
		Valid:          report.Valid,
		MajorIndustry:  report.MajorIndustry,
		Issuer:         report.Issuer,
		CardNumber:     report.CardNumber,
		PersonalDigits: report.PersonalDigits,
		CheckDigit:     string(report.CheckDigit),
	}
}

// CardBatchResponse represents a batch of generated card numbers.
type CardBatchResponse struct {
	Cards []CardReportResponse `json:"cards"`
}

// MapCardReportsToBatchResponse converts domain card reports to a batch API response.
func MapCardReportsToBatchResponse(reports []*cardDomain.CardReport) CardBatchResponse {
	cards := make([]CardReportResponse, 0, len(reports))
	for _, report := range reports {
		cards = append(cards, MapCardReportToResponse(report))
	}
	return CardBatchResponse{Cards: cards}
}

// ClassificationResponse represents the issuer and major industry of a card number.
type ClassificationResponse struct {
	MajorIndustry string  `json:"major_industry"`
	Issuer        *string `json:"issuer"`
}

// MapClassificationToResponse converts a domain classification to an API response.
func MapClassificationToResponse(classification *cardDomain.Classification) ClassificationResponse {
	return ClassificationResponse{
		MajorIndustry: classification.MajorIndustry,
		Issuer:        classification.Issuer,
	}
}
