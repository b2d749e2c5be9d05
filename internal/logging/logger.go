package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "DAIKIN_LOG_LEVEL"

// maxBodyLog caps how much of a device response body is logged
const maxBodyLog = 256

// New builds a logger for the given level without touching the global one.
// If level is empty, it checks DAIKIN_LOG_LEVEL.
// If neither is set, a no-op logger is returned.
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		return zap.NewNop(), nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// ParseLevel maps a level name to a zap level.
// Unknown names fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize sets the global logger for the given level.
// See New for how an empty level is resolved.
func Initialize(level string) error {
	l, err := New(level)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so CLI output stays clean
		logger = zap.NewNop()
	}
	return logger
}

// LogDeviceRequest logs an outgoing adapter request
func LogDeviceRequest(l *zap.Logger, baseURL, path string, attempt int) {
	l.Debug("Device request",
		zap.String("base_url", baseURL),
		zap.String("path", path),
		zap.Int("attempt", attempt),
	)
}

// LogDeviceResponse logs an adapter response body
func LogDeviceResponse(l *zap.Logger, path string, statusCode int, body string, elapsed time.Duration) {
	l.Debug("Device response",
		zap.String("path", path),
		zap.Int("status_code", statusCode),
		zap.Duration("elapsed", elapsed),
		zap.String("body", truncate(body)),
	)
}

func truncate(body string) string {
	if len(body) > maxBodyLog {
		return body[:maxBodyLog] + "..."
	}
	return body
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
