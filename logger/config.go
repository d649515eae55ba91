package logger

import "go.uber.org/zap/zapcore"

// Keys of the logger settings in a configuration.Configuration.
const (
	ConfigurationKeyLevel             = "logger.level"
	ConfigurationKeyDisableCaller     = "logger.disableCaller"
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	ConfigurationKeyStacktraceLevel   = "logger.stacktraceLevel"
	ConfigurationKeyEncoding          = "logger.encoding"
	ConfigurationKeyOutputPaths       = "logger.outputPaths"
)

// Config contains the settings of a root logger.
type Config struct {
	// Level is the lowest level that is written ("debug", "info", "warn", "error", "dpanic", "panic" or "fatal").
	Level string `json:"level"`
	// DisableCaller omits the file and line of the logging call from every entry.
	DisableCaller bool `json:"disableCaller"`
	// DisableStacktrace never attaches stacktraces, regardless of StacktraceLevel.
	DisableStacktrace bool `json:"disableStacktrace"`
	// StacktraceLevel is the lowest level whose entries carry a stacktrace.
	StacktraceLevel string `json:"stacktraceLevel"`
	// Encoding is either "console" for humans or "json" for log shippers.
	Encoding string `json:"encoding"`
	// OutputPaths are the sinks of the logger: file paths, URLs, "stdout" or "stderr".
	OutputPaths []string `json:"outputPaths"`
}

// DefaultCfg is used for every setting that is not configured.
var DefaultCfg = Config{
	Level:           "info",
	StacktraceLevel: "panic",
	Encoding:        "console",
	OutputPaths:     []string{"stdout"},
}

// encoderConfig writes upper-case levels, RFC3339 timestamps and package/file:line callers.
var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
	EncodeName:     zapcore.FullNameEncoder,
}
