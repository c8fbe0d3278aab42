package debug

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

// Logs prints the tool's log file at path. In live mode new lines are
// followed as long as stdout is a terminal.
func Logs(w io.Writer, path string, enabled, live bool) error {
	if live {
		return tailLiveLogs(w, path, enabled)
	}
	return showExistingLogs(w, path, enabled)
}

// tailLiveLogs follows log entries in real-time
func tailLiveLogs(w io.Writer, path string, enabled bool) error {
	if !enabled {
		return errors.New("logging is not enabled in config: set logging.enabled to true for live debugging")
	}

	shouldFollow := isatty.IsTerminal(os.Stdout.Fd())
	tailConfig := tail.Config{
		ReOpen:    shouldFollow,
		Follow:    shouldFollow,
		MustExist: true,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		},
	}

	t, err := tail.TailFile(path, tailConfig)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.New("log file does not exist: run a migration with logging enabled first")
		}
		return err
	}
	defer t.Cleanup()
	slog.Info("live tail started", "path", path)

	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}

	return t.Err()
}

// showExistingLogs displays the current content of the log file
func showExistingLogs(w io.Writer, path string, enabled bool) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if !enabled {
			return errors.New("logging is not enabled in config: set logging.enabled to true to create log files")
		}
		return errors.New("no log file exists yet: run a migration first")
	}
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}

	return scanner.Err()
}
