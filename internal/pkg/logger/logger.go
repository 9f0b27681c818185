// Package logger configures the process-wide zerolog logger and exposes
// leveled event constructors so callers never touch the global directly.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger zerolog.Logger

// LogLevel names a logging threshold
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// Config carries the logger settings. Output defaults to os.Stdout, Pretty
// switches from JSON lines to the human-readable console format.
type Config struct {
	Level  LogLevel
	Pretty bool
	Output io.Writer
}

// Configure rebuilds the global logger. Unknown levels fall back to info
// so a typo in the config never silences the service.
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	switch config.Level {
	case DebugLevel:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case InfoLevel:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case WarnLevel:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case ErrorLevel:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case FatalLevel:
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
}

// Debug starts a debug-level event
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts an info-level event
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a warn-level event
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts an error-level event
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Fatal starts a fatal-level event; the process exits when it is sent
func Fatal() *zerolog.Event {
	return defaultLogger.Fatal()
}

func init() {
	// JSON at info level until the configuration is loaded
	Configure(Config{
		Level:  InfoLevel,
		Output: os.Stdout,
	})
}
