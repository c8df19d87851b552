package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	cardMocks "github.com/allisson/cardengine/internal/card/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordCardResult(ctx context.Context, operation, issuer string, valid bool) {
	m.Called(ctx, operation, issuer, valid)
}

func expectRecorded(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "card", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "card", operation, mock.AnythingOfType("time.Duration"), status).Once()
}

func TestNewCardUseCaseWithMetrics(t *testing.T) {
	decorator := NewCardUseCaseWithMetrics(&cardMocks.MockCardUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.IsType(t, &cardUseCaseWithMetrics{}, decorator)
}

func TestCardUseCaseWithMetrics_Validate(t *testing.T) {
	tests := []struct {
		name           string
		report         *cardDomain.CardReport
		err            error
		expectedStatus string
	}{
		{
			name:           "Success_RecordsSuccessMetrics",
			report:         &cardDomain.CardReport{Valid: false, CheckDigit: '1'},
			expectedStatus: "success",
		},
		{
			name:           "Error_RecordsErrorMetrics",
			err:            cardDomain.ErrInvalidCardNumber,
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := &cardMocks.MockCardUseCase{}
			mockMetrics := &mockBusinessMetrics{}

			if tt.report != nil {
				mockUseCase.On("Validate", mock.Anything, "4111111111111111").Return(tt.report, nil).Once()
			} else {
				mockUseCase.On("Validate", mock.Anything, "4111111111111111").Return(nil, tt.err).Once()
			}
			expectRecorded(mockMetrics, "validate", tt.expectedStatus)
			if tt.report != nil {
				mockMetrics.On("RecordCardResult", mock.Anything, "validate", "", false).Once()
			}

			decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
			report, err := decorator.Validate(context.Background(), "4111111111111111")

			assert.Equal(t, tt.report, report)
			assert.Equal(t, tt.err, err)
			mockUseCase.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestCardUseCaseWithMetrics_Generate(t *testing.T) {
	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		issuer := cardDomain.IssuerVisa
		expected := &cardDomain.CardReport{Valid: true, Issuer: &issuer, CardNumber: "4123456789012349"}

		mockUseCase.On("Generate", mock.Anything, "4").Return(expected, nil).Once()
		expectRecorded(mockMetrics, "generate", "success")
		mockMetrics.On("RecordCardResult", mock.Anything, "generate", cardDomain.IssuerVisa, true).Once()

		report, err := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics).Generate(context.Background(), "4")

		require.NoError(t, err)
		assert.Equal(t, expected, report)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Generate", mock.Anything, "4").Return(nil, cardDomain.ErrEntropyExhausted).Once()
		expectRecorded(mockMetrics, "generate", "error")

		report, err := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics).Generate(context.Background(), "4")

		assert.Nil(t, report)
		assert.ErrorIs(t, err, cardDomain.ErrEntropyExhausted)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCardUseCaseWithMetrics_Classify(t *testing.T) {
	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		expected := &cardDomain.Classification{MajorIndustry: cardDomain.IndustryBanking}

		mockUseCase.On("Classify", mock.Anything, "5400000").Return(expected, nil).Once()
		expectRecorded(mockMetrics, "classify", "success")

		classification, err := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics).
			Classify(context.Background(), "5400000")

		require.NoError(t, err)
		assert.Equal(t, expected, classification)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &cardMocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		expectedErr := errors.New("boom")

		mockUseCase.On("Classify", mock.Anything, "5400000").Return(nil, expectedErr).Once()
		expectRecorded(mockMetrics, "classify", "error")

		classification, err := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics).
			Classify(context.Background(), "5400000")

		assert.Nil(t, classification)
		assert.Equal(t, expectedErr, err)
		mockMetrics.AssertExpectations(t)
	})
}
