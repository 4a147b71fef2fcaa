// Package logging wraps zerolog with the defaults used across tf.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures the root logger
type Options struct {
	Level      string
	Format     string
	Writer     io.Writer
	WithCaller bool
}

// Logger is the logging type handed out by this package
type Logger = zerolog.Logger

var root atomic.Pointer[zerolog.Logger]

// FromEnv reads TF_LOG_LEVEL and TF_LOG_FORMAT. It reads the environment
// directly so config can depend on this package.
func FromEnv() Options {
	opt := Options{
		Level:  strings.ToLower(os.Getenv("TF_LOG_LEVEL")),
		Format: strings.ToLower(os.Getenv("TF_LOG_FORMAT")),
	}
	if opt.Level == "" {
		opt.Level = "warn"
	}
	if opt.Format == "" {
		opt.Format = "console"
	}
	return opt
}

// Init builds the root logger. Unlike a sync.Once setup it may be called
// again, so the CLI can re-configure after flags are parsed.
func Init(opt Options) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl := parseLevel(opt.Level)
	if DebugEnabled() {
		lvl = zerolog.DebugLevel
	}

	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.Writer != nil}
	}

	log := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	if opt.WithCaller {
		log = log.With().Caller().Logger()
	}
	root.Store(&log)
}

// Get returns the root logger, initializing it from the environment on
// first use.
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
