// Package logger holds the process-wide zerolog logger. The server builds it
// once from config with Init; packages then take tagged children from
// Component rather than constructing their own.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	Level   string    // trace, debug, info, warn or error; anything else means info
	Pretty  bool      // console output for local runs, JSON otherwise
	Output  io.Writer // os.Stdout when nil
	Service string
	Version string
}

var root atomic.Pointer[zerolog.Logger]

// Init installs the logger described by opts. The first call wins; later
// calls return the installed logger unchanged.
func Init(opts Options) zerolog.Logger {
	l := opts.build()
	if root.CompareAndSwap(nil, &l) {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		zerolog.SetGlobalLevel(l.GetLevel())
	}
	return *root.Load()
}

// Get panics when called before Init.
func Get() zerolog.Logger {
	l := root.Load()
	if l == nil {
		panic("logger: Init has not been called")
	}
	return *l
}

// Component tags entries with the subsystem that wrote them, e.g. "auth".
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

func (o Options) build() zerolog.Logger {
	var w io.Writer = os.Stdout
	if o.Output != nil {
		w = o.Output
	}
	if o.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	fields := make(map[string]any, 2)
	if o.Service != "" {
		fields["service"] = o.Service
	}
	if o.Version != "" {
		fields["version"] = o.Version
	}

	return zerolog.New(w).
		Level(levelOf(o.Level)).
		With().
		Timestamp().
		Caller().
		Fields(fields).
		Logger()
}

func levelOf(name string) zerolog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
