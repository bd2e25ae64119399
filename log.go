package cefgo

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/obinnaokechukwu/cefgo/internal/logging"
)

// LogSeverity mirrors cef_log_severity_t.
type LogSeverity int32

// Log severity constants matching CEF's LOGSEVERITY_* values.
const (
	LogSeverityDefault LogSeverity = 0
	LogSeverityVerbose LogSeverity = 1
	LogSeverityDebug   LogSeverity = LogSeverityVerbose
	LogSeverityInfo    LogSeverity = 2
	LogSeverityWarning LogSeverity = 3
	LogSeverityError   LogSeverity = 4
	LogSeverityFatal   LogSeverity = 5
	LogSeverityDisable LogSeverity = 99
)

// String returns the string representation of the severity.
func (s LogSeverity) String() string {
	switch s {
	case LogSeverityDefault:
		return "default"
	case LogSeverityVerbose:
		return "verbose"
	case LogSeverityInfo:
		return "info"
	case LogSeverityWarning:
		return "warning"
	case LogSeverityError:
		return "error"
	case LogSeverityFatal:
		return "fatal"
	case LogSeverityDisable:
		return "disable"
	default:
		return "unknown"
	}
}

// Level returns the zap level closest to s. Default maps to info, which is
// what CEF itself uses when no severity is configured.
func (s LogSeverity) Level() zapcore.Level {
	switch s {
	case LogSeverityVerbose:
		return zapcore.DebugLevel
	case LogSeverityWarning:
		return zapcore.WarnLevel
	case LogSeverityError:
		return zapcore.ErrorLevel
	case LogSeverityFatal, LogSeverityDisable:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// SeverityForLevel returns the CEF severity matching a zap level, for
// passing the Go log level through to cef_settings_t.log_severity.
func SeverityForLevel(l zapcore.Level) LogSeverity {
	switch {
	case l <= zapcore.DebugLevel:
		return LogSeverityVerbose
	case l == zapcore.InfoLevel:
		return LogSeverityInfo
	case l == zapcore.WarnLevel:
		return LogSeverityWarning
	case l < zapcore.FatalLevel:
		return LogSeverityError
	default:
		return LogSeverityFatal
	}
}

// SetLogger replaces the logger used by the bridge. Passing nil disables
// logging.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}

// Logger returns the logger used by the bridge.
func Logger() *zap.Logger {
	return logging.L()
}
