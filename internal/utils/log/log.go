package log

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

var (
	defaultStylesOnce sync.Once
	defaultStyles     atomic.Pointer[Styles]
)

// DefaultStyles returns the shared level styles
func DefaultStyles() *Styles {
	defaultStylesOnce.Do(func() {
		defaultStyles.Store(newStyles())
	})
	return defaultStyles.Load()
}

// New creates a new logger with the given options. The returned closer
// releases the output opened by UseOutputFunc, if any.
func New(opts ...Option) (*slog.Logger, io.Closer) {
	o := DefaultOptions()
	o.Apply(opts...)

	var closer io.Closer = nopCloser{}

	// Handle output writer
	if o.OutputFunc != nil {
		w, err := o.OutputFunc()
		if err != nil {
			// logging must never stop a run
			w = io.Discard
		}
		o.Writer = w
		if c, ok := w.(io.Closer); ok {
			closer = c
		}
	}

	handler := charmlog.NewWithOptions(o.Writer, o.Options)
	handler.SetStyles(o.Styles)

	logger := slog.New(handler)

	if o.Default {
		charmlog.SetDefault(handler)
		slog.SetDefault(logger)
	}

	return logger, closer
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	l, _ := New(UseOutput(io.Discard))
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
