package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/todoreducer/internal/config"
)

// Init points the global logger at cfg.LogFile. The terminal is owned by the
// UI, so without a log file everything is discarded. The returned closer
// must be called on exit.
func Init(cfg *config.Config) (io.Closer, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	SetLogLevel(cfg.LogLevel)

	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	output := zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	log.Debug().Str("loglevel", zerolog.GlobalLevel().String()).Msg("Zerolog initialized.")
	return f, nil
}

// SetLogLevel sets the global level; unknown or empty levels mean info.
func SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// ErrorWithStack logs err together with its stack trace.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
