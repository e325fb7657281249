package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/PetFeed_Go/internal/config"
	"github.com/osse101/PetFeed_Go/internal/logger"
)

// SetupLogger installs the default slog logger from cfg. When cfg.LogDir is set,
// output also goes to a timestamped session file there and old sessions are pruned.
// The returned file is nil without a LogDir; otherwise the caller must close it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	logCfg := loggerConfig(cfg)

	if cfg.LogDir == "" {
		logger.InitLogger(logCfg)
		logStartup(cfg)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))
	logStartup(cfg)
	return logFile, nil
}

func loggerConfig(cfg *config.Config) logger.Config {
	// Source locations only in dev
	addSource := cfg.Environment == config.DefaultEnvironment

	return logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
}

func logStartup(cfg *config.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigLoaded,
		"port", cfg.Port,
		"feed_hard_cap_hours", cfg.FeedHardCapHours,
		"aggregate_workers", cfg.AggregateWorkers,
		"snapshot_cache_size", cfg.SnapshotCacheSize,
		"snapshot_ttl", cfg.SnapshotTTL,
		"auth_enabled", cfg.AuthEnabled())
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete old log file %s: %v\n", name, err)
		}
	}
}
