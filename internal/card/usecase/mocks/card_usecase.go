// Package mocks provides mock implementations of card use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
)

// MockCardUseCase is a mock implementation of CardUseCase for testing.
type MockCardUseCase struct {
	mock.Mock
}

// Validate mocks the Validate method of CardUseCase.
func (m *MockCardUseCase) Validate(ctx context.Context, cardNumber string) (*cardDomain.CardReport, error) {
	args := m.Called(ctx, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.CardReport), args.Error(1)
}

// Generate mocks the Generate method of CardUseCase.
func (m *MockCardUseCase) Generate(ctx context.Context, majorIdentifier string) (*cardDomain.CardReport, error) {
	args := m.Called(ctx, majorIdentifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.CardReport), args.Error(1)
}

// Classify mocks the Classify method of CardUseCase.
func (m *MockCardUseCase) Classify(ctx context.Context, cardNumber string) (*cardDomain.Classification, error) {
	args := m.Called(ctx, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.Classification), args.Error(1)
}
