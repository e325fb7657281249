package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// =============================================================================
// Startup and Shutdown
// =============================================================================

const (
	// ShutdownTimeout bounds how long in-flight requests may take to finish
	ShutdownTimeout = 15 * time.Second

	// Pool for periodic background jobs
	BackgroundWorkers   = 1
	BackgroundQueueSize = 1

	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting petfeed"
	LogMsgConfigLoaded        = "Configuration loaded"
	LogMsgEnvWarning          = "Environment warning"
	LogMsgShuttingDownServer  = "Shutting down server..."
	LogMsgServerStopped       = "Server stopped"
	LogMsgServerForcedStop    = "Server forced to shutdown"
	LogMsgSnapshotCachePurged = "Snapshot cache purged"
)
