package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "SQLite")
	t.Setenv("AUTH_ENABLED", "off")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "2")
	t.Setenv("RATE_LIMIT_RATE", "2.5")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", " Admin@Example.com ")
	t.Setenv("BOOTSTRAP_ADMIN_PASSWORD", "secret-password")

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 2.5, cfg.RateLimit.Rate)
	assert.Equal(t, "admin@example.com", cfg.Bootstrap.AdminEmail)
	assert.True(t, cfg.Bootstrap.Enabled())

	dbCfg := ProvideDBConfig(cfg)
	assert.Equal(t, "sqlite", dbCfg.Type)
	assert.Equal(t, time.Duration(cfg.DBConnMaxLifetime)*time.Second, dbCfg.ConnMaxLifetime)
}

func TestPaginationConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Run("defaults without file", func(t *testing.T) {
		holder, err := NewPaginationConfigHolder()
		require.NoError(t, err)
		assert.Equal(t, DefaultPaginationConfig(), holder.Get())
	})

	t.Run("file overrides", func(t *testing.T) {
		content := []byte("pagination:\n  default_per_page: 25\n  max_per_page: 50\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pagination.yml"), content, 0o600))

		holder, err := NewPaginationConfigHolder()
		require.NoError(t, err)
		assert.Equal(t, PaginationConfig{DefaultPerPage: 25, MaxPerPage: 50}, holder.Get())
	})
}

func TestValidatePaginationConfig(t *testing.T) {
	assert.Error(t, validatePaginationConfig(PaginationConfig{DefaultPerPage: 0, MaxPerPage: 10}))
	assert.Error(t, validatePaginationConfig(PaginationConfig{DefaultPerPage: 20, MaxPerPage: 10}))
	assert.NoError(t, validatePaginationConfig(PaginationConfig{DefaultPerPage: 10, MaxPerPage: 10}))
}
