package observability

import (
	"github.com/smallbiznis/staffhub/internal/observability/logger"
	"github.com/smallbiznis/staffhub/internal/observability/metrics"
	"github.com/smallbiznis/staffhub/internal/observability/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		LoadConfig,
		Config.Logger,
		Config.Tracing,
		Config.Metrics,
		logger.New,
		tracing.NewProvider,
		metrics.NewProvider,
		metrics.New,
		metrics.NewHTTPMetrics,
	),
	// the tracer provider installs itself globally; force its construction
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)
