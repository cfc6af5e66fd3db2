package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestFilterAttributesDropsForbiddenLabels(t *testing.T) {
	attrs := FilterAttributes(
		attribute.String("resource", "events"),
		attribute.String("user_id", "456"),
		attribute.String("operation", "create"),
	)
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "resource" || attrs[1].Key != "operation" {
		t.Fatalf("unexpected attributes retained: %v", attrs)
	}
}

func TestMetricsRecordOnNoopProvider(t *testing.T) {
	m, err := New(Config{ServiceName: "staffhub"}, noop.NewMeterProvider())
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordResourceOperation(ctx, "events", "create")
	m.RecordValidationFailure(ctx, "events", "update")
	m.RecordRateLimitDenied(ctx, "/api/events", "rate")

	var nilMetrics *Metrics
	nilMetrics.RecordResourceOperation(ctx, "events", "create")
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m, err := NewHTTPMetricsWithRegisterer(reg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(GinMiddleware(m))
	r.GET("/api/events/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/events/1", nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	var requests *dto.MetricFamily
	for _, family := range families {
		if family.GetName() == "staffhub_http_requests_total" {
			requests = family
		}
	}
	require.NotNil(t, requests)
	require.Len(t, requests.GetMetric(), 1)

	metric := requests.GetMetric()[0]
	assert.Equal(t, 2.0, metric.GetCounter().GetValue())
	labels := map[string]string{}
	for _, pair := range metric.GetLabel() {
		labels[pair.GetName()] = pair.GetValue()
	}
	assert.Equal(t, "/api/events/:id", labels["route"])
	assert.Equal(t, "204", labels["status_code"])
}

func TestNewHTTPMetricsReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewHTTPMetricsWithRegisterer(reg)
	require.NoError(t, err)
	second, err := NewHTTPMetricsWithRegisterer(reg)
	require.NoError(t, err)
	assert.Same(t, first.requests, second.requests)
}
