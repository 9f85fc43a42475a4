package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog for the process.
func Setup(environment, level string) zerolog.Logger {
	return SetupWithWriter(environment, level, zerolog.ConsoleWriter{Out: os.Stderr})
}

// SetupWithWriter configures zerolog to write to w. The development environment always logs at debug.
func SetupWithWriter(environment, level string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	if environment == "development" {
		logLevel = zerolog.DebugLevel
	}

	logger := zerolog.New(w).With().Timestamp().Logger().Level(logLevel)
	log.Logger = logger
	return logger
}
