package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, an optional YAML file and
// CONTENTSCORE_* environment variables, in increasing precedence.
// When path is empty a contentscore.yaml in the working directory or
// /etc/contentscore is used if present.
func Load(path string) (*Config, error) {
	// .env files feed the environment before viper reads it
	if err := godotenv.Load(".env.development"); err != nil {
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("contentscore")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/contentscore")

		// A missing config file is fine, defaults and env cover everything
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	v.SetEnvPrefix("CONTENTSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.mode", DefaultMode)
	v.SetDefault("server.allowed_origin", "")

	// Analysis defaults
	v.SetDefault("analysis.site_domain", "")

	// Rate limit defaults
	v.SetDefault("rate_limit.requests_per_second", DefaultRateLimitRPS)
	v.SetDefault("rate_limit.burst", DefaultRateLimitBurst)

	// Cache defaults
	v.SetDefault("cache.enabled", DefaultCacheEnabled)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("cache.max_entries", DefaultCacheMaxEntries)

	// Stats defaults
	v.SetDefault("stats.directory", DefaultStatsDir)
	v.SetDefault("stats.retain_months", DefaultStatsRetainMonths)

	// Fetch defaults
	v.SetDefault("fetch.timeout", DefaultFetchTimeout)
	v.SetDefault("fetch.user_agent", DefaultFetchUserAgent)
	v.SetDefault("fetch.max_body_size", DefaultFetchMaxBodySize)
	v.SetDefault("fetch.max_retries", DefaultFetchMaxRetries)

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
