// Package logger configures the global zerolog logger and exposes leveled
// event helpers for code that runs before dependency wiring is done.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel names a zerolog level in configuration
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// Config controls the global logger
type Config struct {
	Level  LogLevel
	Pretty bool      // console writer instead of JSON
	Output io.Writer // defaults to os.Stdout
}

var defaultLogger zerolog.Logger

// Configure sets the global log level and output format. Unknown levels
// fall back to info.
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(string(config.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

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

// Debug starts a debug-level event on the global logger
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts an info-level event on the global logger
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a warn-level event on the global logger
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts an error-level event on the global logger
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Fatal starts a fatal-level event; the process exits when it is sent
func Fatal() *zerolog.Event {
	return defaultLogger.Fatal()
}

func init() {
	Configure(Config{
		Level:  InfoLevel,
		Pretty: true,
	})
}
