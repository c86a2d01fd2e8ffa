package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8082, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 2, cfg.Stats.RetainMonths)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultFetchUserAgent, cfg.Fetch.UserAgent)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contentscore.yaml")
	content := []byte(`
server:
  port: 9000
  mode: debug
analysis:
  site_domain: example.com
cache:
  ttl: 30m
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "example.com", cfg.Analysis.SiteDomain)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset values keep their defaults
	assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimit.Burst)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CONTENTSCORE_SERVER_PORT", "9001")
	t.Setenv("CONTENTSCORE_ANALYSIS_SITE_DOMAIN", "blog.example.org")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "blog.example.org", cfg.Analysis.SiteDomain)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Mode = "production"
	assert.Error(t, cfg.Validate())
}

func TestValidateClampsOutOfRangeValues(t *testing.T) {
	cfg := Default()
	cfg.RateLimit.RequestsPerSecond = -1
	cfg.RateLimit.Burst = 0
	cfg.Cache.TTL = time.Second
	cfg.Cache.MaxEntries = 0
	cfg.Fetch.Timeout = 0
	cfg.Fetch.MaxRetries = 99
	cfg.Stats.RetainMonths = -5

	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultRateLimitRPS, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimit.Burst)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, DefaultCacheMaxEntries, cfg.Cache.MaxEntries)
	assert.Equal(t, DefaultFetchTimeout, cfg.Fetch.Timeout)
	assert.Equal(t, DefaultFetchMaxRetries, cfg.Fetch.MaxRetries)
	assert.Equal(t, DefaultStatsRetainMonths, cfg.Stats.RetainMonths)
}
