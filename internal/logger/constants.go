package logger

// ContextKeyRequestID is the context key carrying the request id
const ContextKeyRequestID = "request_id"

// Log levels accepted in Config.Level
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "petfeed"
	CLIServiceName     = "feedquote"
	DefaultVersion     = "dev"
)

const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
	EnvironmentCLI        = "cli"
)

// Attribute keys added to records
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
