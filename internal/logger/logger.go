package logger

import (
	"fmt"
	"sync"

	"careerfit/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	once         sync.Once
)

// Initialize sets up the global logger once. Subsequent calls are no-ops.
func Initialize(cfg config.LoggerConfig) error {
	var initErr error
	once.Do(func() {
		level := zapcore.InfoLevel
		if cfg.Level != "" {
			if err := level.Set(cfg.Level); err != nil {
				initErr = fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
				return
			}
		}

		var zapCfg zap.Config
		if cfg.Env == "production" {
			zapCfg = zap.NewProductionConfig()
		} else {
			zapCfg = zap.NewDevelopmentConfig()
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)

		logger, err := zapCfg.Build(zap.AddCallerSkip(0))
		if err != nil {
			initErr = fmt.Errorf("failed to build logger: %w", err)
			return
		}
		globalLogger = logger
	})
	return initErr
}

// Get returns the global logger. Falls back to a no-op logger if
// Initialize was never called, so library code can log unconditionally.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Sync()
}
