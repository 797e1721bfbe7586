// Package logging provides the zerolog-backed logger used by the CLI and the
// API client.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects the level, format and destination of log output.
type Config struct {
	Level  string `validate:"omitempty,oneof=trace debug info warn error"`
	Format string `validate:"omitempty,oneof=console json"`
	Output io.Writer
}

func (c *Config) setDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}

	if c.Format == "" {
		c.Format = FormatConsole
	}

	if c.Output == nil {
		c.Output = os.Stderr
	}
}

// Logger adapts a zerolog.Logger to the map-of-fields logging interface used
// across the client.
type Logger struct {
	logger zerolog.Logger
}

// New creates a logger from config.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = &Config{}
	}

	config.setDefaults()

	err := validator.New().Struct(config)
	if err != nil {
		return nil, fmt.Errorf("logger config validation error: %w", err)
	}

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	writer := config.Output
	if config.Format == FormatConsole {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	return &Logger{
		logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// LevelFor maps the CLI verbosity flags to a log level.
func LevelFor(verbose, debug bool) string {
	switch {
	case debug:
		return "debug"
	case verbose:
		return "info"
	default:
		return "warn"
	}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

// Info logs at info level.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

// Error logs at error level.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
