package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvEnvironment       = "ENVIRONMENT"
	EnvVersion           = "VERSION"
	EnvServiceName       = "SERVICE_NAME"
	EnvFeedHardCapHours  = "FEED_HARD_CAP_HOURS"
	EnvAggregateWorkers  = "AGGREGATE_WORKERS"
	EnvSnapshotCacheSize = "SNAPSHOT_CACHE_SIZE"
	EnvSnapshotTTL       = "SNAPSHOT_TTL"
	EnvCacheStatsEvery   = "CACHE_STATS_INTERVAL"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultVersion           = "dev"
	DefaultServiceName       = "petfeed"
	DefaultFeedHardCapHours  = "168"
	DefaultAggregateWorkers  = "1"
	DefaultSnapshotCacheSize = "10000"
	DefaultSnapshotTTL       = 10 * time.Minute
	DefaultCacheStatsEvery   = 30 * time.Second

	// MaxAggregateWorkers bounds the per-batch goroutine fan-out
	MaxAggregateWorkers = 64
)

// Example values shipped in .env.example
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)

// EnvironmentProduction is the ENVIRONMENT value that requires an API key
const EnvironmentProduction = "prod"
