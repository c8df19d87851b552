package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
	"github.com/allisson/cardengine/internal/config"
	"github.com/allisson/cardengine/internal/metrics"
)

func newTestConfig() *config.Config {
	return &config.Config{
		ServerHost:              "localhost",
		ServerPort:              8080,
		ShutdownTimeout:         time.Second,
		LogLevel:                "error",
		CardMinLength:           cardDomain.MinCardNumberLength,
		CardMaxLength:           cardDomain.MaxCardNumberLength,
		EntropyPoolBytes:        cardDomain.DefaultEntropyPoolBytes,
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 10,
		RateLimitBurst:          20,
		MetricsEnabled:          false,
		MetricsNamespace:        "cardengine",
		MetricsPort:             8081,
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := newTestConfig()

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

// TestContainerLogger verifies that the logger is a lazily created singleton.
func TestContainerLogger(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "debug"})
	assert.Nil(t, container.logger)

	logger := container.Logger()
	require.NotNil(t, logger)
	assert.Same(t, logger, container.Logger())
}

// TestContainerLoggerDefaultLevel verifies that an unknown level still yields a logger.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "invalid"})
	assert.NotNil(t, container.Logger())
}

func TestContainer_CardEngineSingletons(t *testing.T) {
	container := NewContainer(newTestConfig())

	assert.Same(t, container.ChecksumEngine(), container.ChecksumEngine())
	assert.Same(t, container.IssuerClassifier(), container.IssuerClassifier())
	assert.Same(t, container.NumberGenerator(), container.NumberGenerator())

	source, err := container.EntropyFactory()()
	require.NoError(t, err)
	digit, err := source.NextDigit()
	require.NoError(t, err)
	assert.True(t, digit >= '0' && digit <= '9')
}

func TestContainer_CardUseCase(t *testing.T) {
	container := NewContainer(newTestConfig())

	useCase, err := container.CardUseCase()
	require.NoError(t, err)

	report, err := useCase.Generate(t.Context(), "37")
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Len(t, report.CardNumber, 15)
	require.NotNil(t, report.Issuer)
	assert.Equal(t, "American Express", *report.Issuer)

	again, err := container.CardUseCase()
	require.NoError(t, err)
	assert.Same(t, useCase, again)
}

func TestContainer_MetricsDisabled(t *testing.T) {
	container := NewContainer(newTestConfig())

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.IsType(t, &metrics.NoOpBusinessMetrics{}, businessMetrics)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, metricsServer)
}

func TestContainer_MetricsEnabled(t *testing.T) {
	cfg := newTestConfig()
	cfg.MetricsEnabled = true
	cfg.MetricsNamespace = "di_test"
	container := NewContainer(cfg)
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	require.NotNil(t, provider)

	useCase, err := container.CardUseCase()
	require.NoError(t, err)
	_, err = useCase.Validate(t.Context(), "4111111111111111")
	require.NoError(t, err)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "di_test_card_results_total")
}

func TestContainer_HTTPServer(t *testing.T) {
	container := NewContainer(newTestConfig())
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	server, err := container.HTTPServer()
	require.NoError(t, err)
	require.NotNil(t, server)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/cards/validate/4111111111111111", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"issuer":"Visa"`)
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	container := NewContainer(newTestConfig())

	// Shutdown should not fail even if no components are initialized
	assert.NoError(t, container.Shutdown(context.TODO()))
}

func TestContainerShutdown_Idempotent(t *testing.T) {
	cfg := newTestConfig()
	cfg.MetricsEnabled = true
	container := NewContainer(cfg)

	_, err := container.HTTPServer()
	require.NoError(t, err)
	_, err = container.MetricsServer()
	require.NoError(t, err)

	assert.NoError(t, container.Shutdown(context.Background()))
	assert.NoError(t, container.Shutdown(context.Background()))
}
