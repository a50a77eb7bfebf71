// Package logger provides the application-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = New(os.Stderr, zerolog.InfoLevel)

// New creates a console logger writing to w with RFC3339 timestamps.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

// SetOutput replaces the shared logger, keeping its level.
func SetOutput(w io.Writer) {
	logger = New(w, logger.GetLevel())
}

// SetLevel parses a level name ("debug", "info", "warn", "error") and applies
// it. Unknown names leave the level unchanged and are returned as an error.
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	if level == zerolog.NoLevel {
		return fmt.Errorf("empty log level")
	}
	logger = logger.Level(level)
	return nil
}

func Info(msg string) {
	logger.Info().Msg(msg)
}

func Infof(format string, args ...interface{}) {
	logger.Info().Msgf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	logger.Warn().Msgf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	logger.Error().Msgf(format, args...)
}

func Debugf(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}
