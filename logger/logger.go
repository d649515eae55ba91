// Package logger builds the zap root logger of the command line tools.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/bodiam/types/configuration"
)

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid log level %s", cfg.Level)
	}

	stacktraceLevel, err := zapcore.ParseLevel(cfg.StacktraceLevel)
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid stacktrace level %s", cfg.StacktraceLevel)
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	root, err := zapCfg.Build(zap.AddStacktrace(stacktraceLevel))
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build root logger")
	}

	return root, nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the provided configuration. Settings that are not
// part of the configuration are taken from DefaultCfg.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*zap.Logger, error) {
	cfg := DefaultCfg

	// get config values one by one, so that unset keys keep their defaults
	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if config.Exists(ConfigurationKeyDisableCaller) {
		cfg.DisableCaller = config.Bool(ConfigurationKeyDisableCaller)
	}
	if config.Exists(ConfigurationKeyDisableStacktrace) {
		cfg.DisableStacktrace = config.Bool(ConfigurationKeyDisableStacktrace)
	}
	if val := config.String(ConfigurationKeyStacktraceLevel); val != "" {
		cfg.StacktraceLevel = val
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return NewRootLogger(cfg)
}
