package config

import (
	"fmt"
	"time"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Analysis  AnalysisConfig  `mapstructure:"analysis" yaml:"analysis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache"`
	Stats     StatsConfig     `mapstructure:"stats" yaml:"stats"`
	Fetch     FetchConfig     `mapstructure:"fetch" yaml:"fetch"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port          int    `mapstructure:"port" yaml:"port"`
	Mode          string `mapstructure:"mode" yaml:"mode"` // gin mode: debug, release or test
	AllowedOrigin string `mapstructure:"allowed_origin" yaml:"allowed_origin"`
}

// AnalysisConfig contains scoring settings
type AnalysisConfig struct {
	// SiteDomain is treated as the site's own domain when classifying
	// links as internal or external
	SiteDomain string `mapstructure:"site_domain" yaml:"site_domain"`
}

// RateLimitConfig contains per-IP rate limiting settings
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst" yaml:"burst"`
}

// CacheConfig contains result cache settings
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL        time.Duration `mapstructure:"ttl" yaml:"ttl"`
	MaxEntries int           `mapstructure:"max_entries" yaml:"max_entries"`
}

// StatsConfig contains usage statistics settings
type StatsConfig struct {
	Directory    string `mapstructure:"directory" yaml:"directory"`
	RetainMonths int    `mapstructure:"retain_months" yaml:"retain_months"`
}

// FetchConfig contains page download settings
type FetchConfig struct {
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent   string        `mapstructure:"user_agent" yaml:"user_agent"`
	MaxBodySize int64         `mapstructure:"max_body_size" yaml:"max_body_size"`
	MaxRetries  int           `mapstructure:"max_retries" yaml:"max_retries"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate checks the configuration and applies defaults for
// out-of-range values
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server.mode: %q", c.Server.Mode)
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		c.RateLimit.RequestsPerSecond = DefaultRateLimitRPS
	}
	if c.RateLimit.Burst < 1 {
		c.RateLimit.Burst = DefaultRateLimitBurst
	}
	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.MaxEntries < 1 {
		c.Cache.MaxEntries = DefaultCacheMaxEntries
	}
	if c.Stats.Directory == "" {
		c.Stats.Directory = DefaultStatsDir
	}
	if c.Stats.RetainMonths < 1 {
		c.Stats.RetainMonths = DefaultStatsRetainMonths
	}
	if c.Fetch.Timeout < time.Second {
		c.Fetch.Timeout = DefaultFetchTimeout
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = DefaultFetchUserAgent
	}
	if c.Fetch.MaxBodySize < 1024 {
		c.Fetch.MaxBodySize = DefaultFetchMaxBodySize
	}
	if c.Fetch.MaxRetries < 0 || c.Fetch.MaxRetries > 10 {
		c.Fetch.MaxRetries = DefaultFetchMaxRetries
	}

	return nil
}
