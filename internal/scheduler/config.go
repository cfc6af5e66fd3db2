package scheduler

import (
	"time"

	"github.com/smallbiznis/staffhub/internal/config"
)

// Config controls scheduler intervals and retention windows.
type Config struct {
	Enabled        bool
	RunInterval    time.Duration
	TokenRetention time.Duration
	JobTimeout     time.Duration
}

func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		RunInterval:    time.Hour,
		TokenRetention: 7 * 24 * time.Hour,
		JobTimeout:     30 * time.Second,
	}
}

func ProvideConfig(cfg config.Config) Config {
	return Config{
		Enabled:        cfg.Scheduler.Enabled,
		RunInterval:    cfg.Scheduler.RunInterval,
		TokenRetention: cfg.Scheduler.TokenRetention,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.RunInterval <= 0 {
		c.RunInterval = defaults.RunInterval
	}
	if c.TokenRetention <= 0 {
		c.TokenRetention = defaults.TokenRetention
	}
	if c.JobTimeout <= 0 {
		c.JobTimeout = defaults.JobTimeout
	}
	return c
}
