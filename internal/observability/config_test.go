package observability

import (
	"testing"

	"github.com/smallbiznis/staffhub/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigNormalizes(t *testing.T) {
	cfg := LoadConfig(config.Config{
		Environment: " production ",
		AppVersion:  "1.2.3",
		Observability: config.ObservabilityConfig{
			LogLevel:       "info",
			OtelProtocol:   "thrift",
			OtelSampleRate: 3,
		},
	})

	assert.Equal(t, "staffhub", cfg.ServiceName)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "grpc", cfg.OtelExporterProtocol)
	assert.Equal(t, 0.1, cfg.OtelSamplingRatio)
	assert.False(t, cfg.Debug())
	assert.False(t, cfg.Logger().IncludeStackOnError)
	assert.Equal(t, "1.2.3", cfg.Tracing().ServiceVersion)
}

func TestDebugInDevelopment(t *testing.T) {
	assert.True(t, Config{Environment: "Development"}.Debug())
	assert.True(t, Config{LogLevel: "debug", Environment: "production"}.Debug())
}
