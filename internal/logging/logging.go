package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// Log level names accepted by SetLevel
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// SetLevel sets the global logging level. Unknown names fall back to info.
func SetLevel(level string) {
	var l zerolog.Level
	switch strings.ToLower(level) {
	case LevelDebug:
		l = zerolog.DebugLevel
	case LevelWarn:
		l = zerolog.WarnLevel
	case LevelError:
		l = zerolog.ErrorLevel
	default:
		l = zerolog.InfoLevel
	}
	logger = logger.Level(l)
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	logger.Info().Msgf(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	logger.Warn().Msgf(format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	logger.Error().Msgf(format, args...)
}

// Fatal logs an error message and exits
func Fatal(format string, args ...interface{}) {
	logger.Fatal().Msgf(format, args...)
}
