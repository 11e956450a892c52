package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Options controls logger construction.
type Options struct {
	// Level is one of "debug", "info", "warn", "error".
	// Empty means logging is disabled (silent mode).
	Level string

	// File is the path logs are appended to. Empty writes to stderr.
	// The TUI always needs a file because it owns the terminal.
	File string

	// JSON selects the JSON encoder instead of the console encoder.
	JSON bool
}

// ParseLevel converts a level name into a zap level.
// Unknown names map to info, matching an explicitly requested but
// misspelled level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// Initialize creates the global logger from opts.
// With no level set the logger is a no-op.
func Initialize(opts Options) error {
	if opts.Level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = opts.File
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(opts.Level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	if opts.JSON {
		config.Encoding = "json"
		config.EncoderConfig = zap.NewProductionEncoderConfig()
	} else if opts.File == "" {
		// Color only when writing to a terminal stream
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs a form state machine transition
func LogTransition(machine, from, to string) {
	Debug("State transition",
		zap.String("machine", machine),
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogValidation logs the outcome of a validation pass.
// Field values are never logged, only their lengths.
func LogValidation(nameLen, textLen int, nameErr, textErr string) {
	Debug("Form validated",
		zap.Int("name_length", nameLen),
		zap.Int("text_length", textLen),
		zap.String("name_error", nameErr),
		zap.String("text_error", textErr),
		zap.Bool("valid", nameErr == "" && textErr == ""),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
