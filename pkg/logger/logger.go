// Package logger holds the process-wide zap logger used by every package of
// the dashboard.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instances for application-wide use
var (
	// Logger is the structured zap logger
	Logger *zap.Logger
	// Sugar is the sugared logger for printf-style logging
	Sugar *zap.SugaredLogger
)

// LogLevel represents the available logging levels for the application
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds configuration for the logger system
type Config struct {
	Level      LogLevel
	Format     string
	OutputPath string
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:      LogLevelInfo,
		Format:     FormatConsole,
		OutputPath: "stdout",
	}
}

// Init initializes the global logger with the provided configuration
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if cfg.Format != FormatJSON {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Format == FormatJSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	output, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	core := zapcore.NewCore(encoder, output, parseLogLevel(cfg.Level))
	Set(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))

	return nil
}

// Set replaces the global logger. Tests use it with zaptest/observer cores.
func Set(l *zap.Logger) {
	Logger = l
	Sugar = l.Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

func openOutput(path string) (zapcore.WriteSyncer, error) {
	switch path {
	case "", "stdout":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	default:
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		return zapcore.AddSync(file), nil
	}
}

func parseLogLevel(level LogLevel) zapcore.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func Debug(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
	}
}

func Info(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
	}
}

func Warn(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
	}
}

func Error(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
	}
}

func Fatal(msg string, fields ...zap.Field) {
	if Logger != nil {
		Logger.WithOptions(zap.AddCallerSkip(1)).Fatal(msg, fields...)
	}
}

func Debugf(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Debugf(template, args...)
	}
}

func Infof(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Infof(template, args...)
	}
}

func Warnf(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Warnf(template, args...)
	}
}

func Errorf(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Errorf(template, args...)
	}
}

func Fatalf(template string, args ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Fatalf(template, args...)
	}
}
