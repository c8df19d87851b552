package metrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// UnmatchedRoute labels requests that matched no registered route. Shared by metrics and
// request logging so both report the same value.
const UnmatchedRoute = "unmatched"

const cardRoutePrefix = "/v1/cards/"

type httpMetrics struct {
	requestCounter metric.Int64Counter
	durationHisto  metric.Float64Histogram
	inFlight       metric.Int64UpDownCounter
}

func newHTTPMetrics(meterProvider metric.MeterProvider, namespace string) (*httpMetrics, error) {
	meter := meterProvider.Meter(namespace)

	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http duration histogram: %w", err)
	}

	inFlight, err := meter.Int64UpDownCounter(
		fmt.Sprintf("%s_http_requests_in_flight", namespace),
		metric.WithDescription("Number of HTTP requests currently being served"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http in-flight counter: %w", err)
	}

	return &httpMetrics{
		requestCounter: requestCounter,
		durationHisto:  durationHisto,
		inFlight:       inFlight,
	}, nil
}

// HTTPMetricsMiddleware returns a Gin middleware that records request count, duration and
// in-flight requests. Requests are labeled by route pattern (e.g., /v1/cards/validate/:number),
// never by raw path, so card numbers stay out of label values. Card routes also carry the
// card operation they serve. If the instruments cannot be created the middleware is a no-op.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	m, err := newHTTPMetrics(meterProvider, namespace)
	if err != nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()

		m.inFlight.Add(ctx, 1)
		defer m.inFlight.Add(ctx, -1)

		c.Next()

		route := RouteLabel(c.FullPath())
		attrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("path", route),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
			attribute.String("card_operation", CardOperation(route)),
		)

		m.requestCounter.Add(ctx, 1, attrs)
		m.durationHisto.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}

// RouteLabel returns the label for a gin route pattern, or UnmatchedRoute when the request
// matched no route.
func RouteLabel(fullPath string) string {
	if fullPath == "" {
		return UnmatchedRoute
	}
	return fullPath
}

// CardOperation maps a card route pattern to the operation it serves: "validate",
// "generate" or "classify". Anything outside /v1/cards reports "none".
func CardOperation(route string) string {
	rest, ok := strings.CutPrefix(route, cardRoutePrefix)
	if !ok {
		return "none"
	}
	op, _, _ := strings.Cut(rest, "/")
	switch op {
	case "validate", "generate", "classify":
		return op
	default:
		return "none"
	}
}
