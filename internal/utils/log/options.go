package log

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Options represents logger configuration options
type Options struct {
	charmlog.Options
	Writer     io.Writer
	Styles     *Styles
	Default    bool
	OutputFunc func() (io.Writer, error)
}

// DefaultOptions returns the default logger options
func DefaultOptions() *Options {
	return &Options{
		Options: charmlog.Options{
			Level:           InfoLevel,
			ReportCaller:    false,
			ReportTimestamp: true,
			TimeFormat:      "2006-01-02 15:04:05",
		},
		Writer: os.Stderr,
		Styles: DefaultStyles(),
	}
}

// Apply applies the given options
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

type Option func(*Options)

func UseLevel(l Level) Option {
	return func(o *Options) {
		o.Level = l
	}
}

func UseOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}

func UseOutputFunc(f func() (io.Writer, error)) Option {
	return func(o *Options) {
		o.OutputFunc = f
	}
}

// UseRotatingFile writes to path, rotating it once it grows past maxSize
// (a human size such as "10MB") and keeping maxFiles old files.
func UseRotatingFile(path, maxSize string, maxFiles int) Option {
	return UseOutputFunc(func() (io.Writer, error) {
		return NewRotateWriter(path, maxSize, maxFiles)
	})
}

func UseReportCaller(report bool) Option {
	return func(o *Options) {
		o.ReportCaller = report
	}
}

func UseReportTimestamp(report bool) Option {
	return func(o *Options) {
		o.ReportTimestamp = report
	}
}

func UsePrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

func AsDefault() Option {
	return func(o *Options) {
		o.Default = true
	}
}
