package config

import "time"

// Default values
const (
	// Server defaults
	DefaultPort = 8082
	DefaultMode = "release"

	// Rate limit defaults
	DefaultRateLimitRPS   = 2.0
	DefaultRateLimitBurst = 5

	// Cache defaults
	DefaultCacheEnabled    = true
	DefaultCacheTTL        = time.Hour
	DefaultCacheMaxEntries = 1000

	// Stats defaults
	DefaultStatsDir          = "./data"
	DefaultStatsRetainMonths = 2

	// Fetch defaults
	DefaultFetchTimeout     = 15 * time.Second
	DefaultFetchUserAgent   = "contentscore/1.0"
	DefaultFetchMaxBodySize = 5 << 20 // 5 MB
	DefaultFetchMaxRetries  = 2

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: DefaultPort,
			Mode: DefaultMode,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: DefaultRateLimitRPS,
			Burst:             DefaultRateLimitBurst,
		},
		Cache: CacheConfig{
			Enabled:    DefaultCacheEnabled,
			TTL:        DefaultCacheTTL,
			MaxEntries: DefaultCacheMaxEntries,
		},
		Stats: StatsConfig{
			Directory:    DefaultStatsDir,
			RetainMonths: DefaultStatsRetainMonths,
		},
		Fetch: FetchConfig{
			Timeout:     DefaultFetchTimeout,
			UserAgent:   DefaultFetchUserAgent,
			MaxBodySize: DefaultFetchMaxBodySize,
			MaxRetries:  DefaultFetchMaxRetries,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
