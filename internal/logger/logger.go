// Package logger provides structured JSON logging using zerolog.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Init initializes the global logger with JSON format.
func Init(level string, pretty bool) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithContext returns a logger with context fields.
func WithContext(fields map[string]interface{}) zerolog.Logger {
	logger := log.Logger
	for k, v := range fields {
		logger = logger.With().Interface(k, v).Logger()
	}
	return logger
}

// Reporter records errors together with their stack to two sinks: the
// application log stream and a plain diagnostic stream (stderr by default).
type Reporter struct {
	stream     func() zerolog.Logger
	diagnostic zerolog.Logger
}

// NewReporter creates a Reporter writing diagnostics to w. A nil w means stderr.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{
		stream:     Logger,
		diagnostic: zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger(),
	}
}

// Report logs err with its stack trace to both sinks.
func (r *Reporter) Report(err error, msg string) {
	if err == nil {
		return
	}
	stream := r.stream()
	stream.Error().Stack().Err(err).Msg(msg)
	r.diagnostic.Error().Stack().Err(err).Msg(msg)
}
