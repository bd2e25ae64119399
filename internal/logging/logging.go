// Package logging holds the process-wide structured logger used by the bridge.
//
// Set CEFGO_LOG=debug|info|warn|error to control verbosity. The default is
// warn so production binaries stay quiet.
package logging

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel is the environment variable read for the default log level.
const EnvLevel = "CEFGO_LOG"

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(newDefault(os.Getenv(EnvLevel)))
}

func newDefault(level string) *zap.Logger {
	lvl := zapcore.WarnLevel
	if level != "" {
		_ = lvl.UnmarshalText([]byte(level))
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("cefgo")
}

// L returns the current logger.
func L() *zap.Logger {
	return current.Load()
}

// Named returns a child of the current logger.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Set replaces the process logger. A nil logger disables logging.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}
