// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	cardHTTP "github.com/allisson/cardengine/internal/card/http"
	cardService "github.com/allisson/cardengine/internal/card/service"
	cardUseCase "github.com/allisson/cardengine/internal/card/usecase"
	"github.com/allisson/cardengine/internal/config"
	"github.com/allisson/cardengine/internal/http"
	"github.com/allisson/cardengine/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Card engine
	checksumEngine   cardService.ChecksumEngine
	issuerClassifier cardService.IssuerClassifier
	numberGenerator  cardService.NumberGenerator
	entropyFactory   cardService.EntropyFactory

	// Use Cases
	cardUseCase cardUseCase.CardUseCase

	// Handlers
	cardHandler *cardHTTP.CardHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer
	routerCancel  context.CancelFunc

	// Initialization flags and mutex for thread-safety
	mu                   sync.Mutex
	loggerInit           sync.Once
	metricsProviderInit  sync.Once
	businessMetricsInit  sync.Once
	checksumEngineInit   sync.Once
	issuerClassifierInit sync.Once
	numberGeneratorInit  sync.Once
	entropyFactoryInit   sync.Once
	cardUseCaseInit      sync.Once
	cardHandlerInit      sync.Once
	httpServerInit       sync.Once
	metricsServerInit    sync.Once
	shutdownOnce         sync.Once
	shutdownErr          error
	initErrors           map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the Prometheus-backed meter provider.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Falls back to a no-op recorder when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("businessMetrics"); storedErr != nil {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// ChecksumEngine returns the Luhn checksum engine.
func (c *Container) ChecksumEngine() cardService.ChecksumEngine {
	c.checksumEngineInit.Do(func() {
		c.checksumEngine = cardService.NewChecksumEngine()
	})
	return c.checksumEngine
}

// IssuerClassifier returns the issuer classifier.
func (c *Container) IssuerClassifier() cardService.IssuerClassifier {
	c.issuerClassifierInit.Do(func() {
		c.issuerClassifier = cardService.NewIssuerClassifier()
	})
	return c.issuerClassifier
}

// NumberGenerator returns the card number generator.
func (c *Container) NumberGenerator() cardService.NumberGenerator {
	c.numberGeneratorInit.Do(func() {
		c.numberGenerator = cardService.NewNumberGenerator(c.ChecksumEngine(), c.IssuerClassifier())
	})
	return c.numberGenerator
}

// EntropyFactory returns the factory that fills a digit pool from crypto/rand per generation.
func (c *Container) EntropyFactory() cardService.EntropyFactory {
	c.entropyFactoryInit.Do(func() {
		c.entropyFactory = cardService.NewDigitPoolFactory(nil, c.config.EntropyPoolBytes)
	})
	return c.entropyFactory
}

// CardUseCase returns the card use case instance.
func (c *Container) CardUseCase() (cardUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.setInitError("cardUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// CardHandler returns the card HTTP handler instance.
func (c *Container) CardHandler() (*cardHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.setInitError("cardHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

// HTTPServer returns the HTTP server instance with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.setInitError("httpServer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("httpServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.setInitError("metricsServer", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down. Only the first call does
// any work; later calls return the first result.
func (c *Container) Shutdown(ctx context.Context) error {
	c.shutdownOnce.Do(func() {
		c.shutdownErr = c.shutdown(ctx)
	})
	return c.shutdownErr
}

func (c *Container) shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP server if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.routerCancel != nil {
		c.routerCancel()
	}

	// Flush the meter provider last so in-flight requests are still counted
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) setInitError(component string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[component] = err
}

func (c *Container) initError(component string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[component]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the meter provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates business metrics on top of the meter provider.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initCardUseCase creates the card use case with all its dependencies.
func (c *Container) initCardUseCase() (cardUseCase.CardUseCase, error) {
	useCaseConfig := cardUseCase.Config{
		MinLength: c.config.CardMinLength,
		MaxLength: c.config.CardMaxLength,
	}

	baseUseCase := cardUseCase.NewCardUseCase(
		useCaseConfig,
		c.ChecksumEngine(),
		c.IssuerClassifier(),
		c.NumberGenerator(),
		c.EntropyFactory(),
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
		}
		return cardUseCase.NewCardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCardHandler creates the card HTTP handler.
func (c *Container) initCardHandler() (*cardHTTP.CardHandler, error) {
	useCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for card handler: %w", err)
	}
	return cardHTTP.NewCardHandler(useCase, c.Logger()), nil
}

// initHTTPServer creates the HTTP server and wires the card routes.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	cardHandler, err := c.CardHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get card handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	// The router context stops background middleware work such as rate limiter cleanup
	routerCtx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.routerCancel = cancel
	c.mu.Unlock()

	server := http.NewServer(c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(routerCtx, c.config, cardHandler, provider)

	return server, nil
}

// initMetricsServer creates the metrics server when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
