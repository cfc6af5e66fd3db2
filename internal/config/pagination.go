package config

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/smallbiznis/staffhub/pkg/db/pagination"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// PaginationConfig controls listing page sizes.
type PaginationConfig struct {
	DefaultPerPage int `mapstructure:"default_per_page"`
	MaxPerPage     int `mapstructure:"max_per_page"`
}

func DefaultPaginationConfig() PaginationConfig {
	return PaginationConfig{
		DefaultPerPage: pagination.DefaultPerPage,
		MaxPerPage:     pagination.MaxPerPage,
	}
}

type PaginationConfigHolder struct {
	current atomic.Value // holds PaginationConfig
}

// NewStaticPaginationConfigHolder returns a holder that never reloads.
func NewStaticPaginationConfigHolder(cfg PaginationConfig) *PaginationConfigHolder {
	holder := &PaginationConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func NewPaginationConfigHolder() (*PaginationConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("pagination")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/staffhub")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STAFFHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPaginationConfig()
	v.SetDefault("pagination.default_per_page", defaults.DefaultPerPage)
	v.SetDefault("pagination.max_per_page", defaults.MaxPerPage)

	fileFound := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fileFound = false
	}

	var cfg PaginationConfig
	if err := v.UnmarshalKey("pagination", &cfg); err != nil {
		return nil, err
	}
	if err := validatePaginationConfig(cfg); err != nil {
		return nil, err
	}

	holder := NewStaticPaginationConfigHolder(cfg)
	if !fileFound {
		return holder, nil
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PaginationConfig
		if err := v.UnmarshalKey("pagination", &updated); err != nil {
			zap.L().Warn("pagination config reload failed", zap.Error(err))
			return
		}
		if err := validatePaginationConfig(updated); err != nil {
			zap.L().Warn("invalid pagination config ignored", zap.Error(err))
			return
		}
		holder.current.Store(updated)
		zap.L().Info("pagination config reloaded", zap.String("file", e.Name))
	})

	return holder, nil
}

func (h *PaginationConfigHolder) Get() PaginationConfig {
	return h.current.Load().(PaginationConfig)
}

func validatePaginationConfig(cfg PaginationConfig) error {
	if cfg.DefaultPerPage <= 0 {
		return errors.New("pagination.default_per_page must be positive")
	}
	if cfg.MaxPerPage < cfg.DefaultPerPage {
		return errors.New("pagination.max_per_page cannot be lower than default_per_page")
	}
	return nil
}
