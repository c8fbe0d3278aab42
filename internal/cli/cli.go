package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/imsidplayer/sidratings/internal/config"
	"github.com/imsidplayer/sidratings/internal/env"
	"github.com/imsidplayer/sidratings/internal/fs"
	"github.com/imsidplayer/sidratings/internal/ui"
	"github.com/imsidplayer/sidratings/internal/utils/debug"
	"github.com/imsidplayer/sidratings/internal/utils/log"
	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
)

const (
	ExitCodeOK    int = 0
	ExitCodeError int = 1
)

// ErrCanceled is returned when the operator declines a confirmation.
var ErrCanceled = errors.New("canceled by user")

type Option struct {
	ConfigDir string `long:"config-dir" value-name:"PATH" description:"Player config directory (default: ~/.imsidplayer or %APPDATA%\\.imsidplayer)"`
	DryRun    bool   `short:"n" long:"dry-run" description:"Show what would be written without modifying any file"`
	Config    string `long:"config" value-name:"PATH" description:"Path to config file" default:""`
	Yes       bool   `short:"y" long:"yes" description:"Answer yes to every confirmation"`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

// RemoveOption adds the flags only remove-ratings understands
type RemoveOption struct {
	Option

	Backup bool `short:"b" long:"backup" description:"Back up the history file before modifying it"`
}

// Streams are the standard streams a run talks to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

type CLI struct {
	version Version
	option  Option
	backup  bool
	config  config.Config
	runID   string

	configDir string
	printer   *ui.Printer
	confirm   ui.Confirmer
	now       func() time.Time
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

// Migrate runs migrate-ratings with args and returns the exit code.
func Migrate(v Version, args []string, s Streams) int {
	var opt Option
	parser := newParser(v, &opt, "[OPTIONS]")
	if code, ok := parse(parser, args, s); !ok {
		return code
	}
	return run(v, opt, false, s, (*CLI).Migrate)
}

// Remove runs remove-ratings with args and returns the exit code.
func Remove(v Version, args []string, s Streams) int {
	var opt RemoveOption
	parser := newParser(v, &opt, "[OPTIONS]")
	if code, ok := parse(parser, args, s); !ok {
		return code
	}
	return run(v, opt.Option, opt.Backup, s, (*CLI).Remove)
}

func newParser(v Version, data any, usage string) *flags.Parser {
	parser := flags.NewParser(data, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = v.AppName
	parser.Usage = usage
	return parser
}

func parse(parser *flags.Parser, args []string, s Streams) (int, bool) {
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(s.Out, err)
			return ExitCodeOK, false
		}
		fmt.Fprintf(s.Err, "%s: %v\n", parser.Name, err)
		return ExitCodeError, false
	}
	if len(rest) > 0 {
		fmt.Fprintf(s.Err, "%s: unexpected arguments: %v\n", parser.Name, rest)
		return ExitCodeError, false
	}
	return ExitCodeOK, true
}

func run(v Version, opt Option, backup bool, s Streams, action func(*CLI) error) int {
	cfg, err := config.Parse(opt.Config)
	if err != nil {
		fmt.Fprintln(s.Err, err)
		return ExitCodeError
	}

	closer := setupLogging(cfg.Logging)
	defer closer.Close()

	defer slog.Debug("main function finished")
	slog.Debug("main function started", "app", v.AppName, "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)
	slog.Debug("config loaded", "config", cfg.String())

	confirmer := ui.NewConfirmer(cfg.Prompt.Style, s.In, s.Out)
	if opt.Yes {
		confirmer = ui.AlwaysYes
	}

	c := CLI{
		version:   v,
		option:    opt,
		backup:    backup,
		config:    cfg,
		runID:     runID(),
		configDir: env.ConfigDir(opt.ConfigDir),
		printer:   ui.NewPrinter(s.Out),
		confirm:   confirmer,
		now:       time.Now,
	}

	if err := c.Run(action); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		if !errors.Is(err, ErrCanceled) && !errors.Is(err, errReported) {
			fmt.Fprintf(s.Err, "%s: %v\n", v.AppName, err)
		}
		return ExitCodeError
	}
	return ExitCodeOK
}

// setupLogging sends logs to the rotating log file when enabled, and
// drops them otherwise.
func setupLogging(cfg config.Logging) io.Closer {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	opts := []log.Option{log.UseLevel(level), log.AsDefault()}
	if cfg.Enabled {
		opts = append(opts, log.UseRotatingFile(
			env.SIDRATINGS_LOG_PATH,
			cfg.Rotation.MaxSize,
			cfg.Rotation.MaxFiles,
		))
	} else {
		opts = append(opts, log.UseOutput(io.Discard))
	}

	logger, closer := log.New(opts...)
	slog.SetDefault(logger.With("run_id", runID()))
	return closer
}

func (c *CLI) Run(action func(*CLI) error) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(c.printer.Writer(), c.version.Print())
		return nil

	default:
		switch c.option.Meta.Debug {
		case "live":
			return debug.Logs(c.printer.Writer(), env.SIDRATINGS_LOG_PATH, c.config.Logging.Enabled, true)
		case "full":
			return debug.Logs(c.printer.Writer(), env.SIDRATINGS_LOG_PATH, c.config.Logging.Enabled, false)
		}
		return action(c)
	}
}

// errReported marks failures already explained on the console
var errReported = errors.New("reported")

// reported wraps err so run does not print it a second time
func reported(err error) error {
	return fmt.Errorf("%w: %w", errReported, err)
}

// writer returns the JSON writer for this run, honoring --dry-run
func (c *CLI) writer() fs.JSONWriter {
	return fs.JSONWriter{DryRun: c.option.DryRun, Out: c.printer.Writer()}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
