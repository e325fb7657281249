package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	ServiceName string
	LogDir      string // Session log files are written here when set

	// Feeding and accrual
	FeedHardCapHours uint32
	AggregateWorkers int

	// Snapshot cache
	SnapshotCacheSize int
	SnapshotTTL       time.Duration
	CacheStatsEvery   time.Duration // How often the cache size gauge is refreshed

	APIKey         string   // API key for /api/v1; empty disables authentication
	TrustedProxies []string // Proxies whose X-Forwarded-For header is honored
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		LogDir:      getEnv(EnvLogDir, ""),
		APIKey:      getEnv(EnvAPIKey, ""),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	hardCap, err := strconv.ParseUint(getEnv(EnvFeedHardCapHours, DefaultFeedHardCapHours), 10, 32)
	if err != nil || hardCap == 0 {
		return nil, fmt.Errorf("invalid FEED_HARD_CAP_HOURS value: must be a positive integer")
	}
	cfg.FeedHardCapHours = uint32(hardCap)

	workers, err := strconv.Atoi(getEnv(EnvAggregateWorkers, DefaultAggregateWorkers))
	if err != nil || workers < 1 || workers > MaxAggregateWorkers {
		return nil, fmt.Errorf("invalid AGGREGATE_WORKERS value: must be between 1 and %d", MaxAggregateWorkers)
	}
	cfg.AggregateWorkers = workers

	size, err := strconv.Atoi(getEnv(EnvSnapshotCacheSize, DefaultSnapshotCacheSize))
	if err != nil || size < 1 {
		return nil, fmt.Errorf("invalid SNAPSHOT_CACHE_SIZE value: must be a positive integer")
	}
	cfg.SnapshotCacheSize = size

	cfg.SnapshotTTL = DefaultSnapshotTTL
	if raw := getEnv(EnvSnapshotTTL, ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid SNAPSHOT_TTL value %q: must be a positive duration", raw)
		}
		cfg.SnapshotTTL = ttl
	}

	cfg.CacheStatsEvery = DefaultCacheStatsEvery
	if raw := getEnv(EnvCacheStatsEvery, ""); raw != "" {
		every, err := time.ParseDuration(raw)
		if err != nil || every <= 0 {
			return nil, fmt.Errorf("invalid CACHE_STATS_INTERVAL value %q: must be a positive duration", raw)
		}
		cfg.CacheStatsEvery = every
	}

	cfg.TrustedProxies = splitList(getEnv(EnvTrustedProxies, ""))

	if cfg.Environment == EnvironmentProduction && cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set in production")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList parses a comma separated list, dropping blank entries
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AuthEnabled reports whether /api/v1 requires an API key
func (c *Config) AuthEnabled() bool {
	return c.APIKey != ""
}
