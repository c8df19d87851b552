// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	customValidation "github.com/allisson/cardengine/internal/validation"
)

// ValidateCardRequest contains the card number to validate.
type ValidateCardRequest struct {
	CardNumber string `json:"card_number"`
}

// Validate checks if the validate card request is valid.
// Length bounds are enforced by the use case from configuration.
func (r *ValidateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CardNumber,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.Digits,
		),
	)
}

// GenerateCardRequest contains the prefix a new card number starts with.
type GenerateCardRequest struct {
	MajorIdentifier string `json:"major_identifier"`
}

// Validate checks if the generate card request is valid.
func (r *GenerateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MajorIdentifier,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.Digits,
			validation.Length(1, cardDomain.MaxCardNumberLength-1),
		),
	)
}
