package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/imsidplayer/sidratings/internal/history"
	"github.com/imsidplayer/sidratings/internal/ui"
)

func (c *CLI) historyPath() string {
	return filepath.Join(c.configDir, c.config.History.Filename)
}

func (c *CLI) ratingPath() string {
	return filepath.Join(c.configDir, c.config.Rating.Filename)
}

// loadHistory reads the history file and reports progress. Files that are
// missing, undecodable, malformed or of an unknown shape are explained and
// yield no records without an error: there is nothing to migrate then.
// Other read failures are returned.
func (c *CLI) loadHistory(path string) ([]history.Record, error) {
	p := c.printer
	p.Section("📖", "Reading %s...", path)

	encodings := c.config.History.Encodings
	res, err := history.Load(path, encodings)
	switch {
	case err == nil:
	case errors.Is(err, history.ErrNotFound):
		slog.Warn("history file not found", "path", path)
		p.Warn("%s does not exist.", path)
		return nil, nil
	case errors.Is(err, history.ErrMalformed):
		slog.Error("history file is malformed", "path", path, "error", err)
		p.Error("JSON parse error in %s: %s", path, syntaxMessage(err))
		return nil, nil
	case errors.Is(err, history.ErrUnexpectedShape):
		slog.Warn("unexpected history format", "path", path, "error", err)
		p.Warn("Unexpected format in %s", path)
		return nil, nil
	case errors.Is(err, history.ErrUndecodable):
		slog.Error("history file could not be decoded", "path", path, "encodings", encodings)
		p.Error("Unable to read %s with the tested encodings: %s", path, strings.Join(encodings, ", "))
		return nil, nil
	default:
		slog.Error("failed to read history", "path", path, "error", err)
		p.Error("Failed to read %s: %v", path, err)
		return nil, reported(err)
	}

	if !res.IsDefaultEncoding() {
		p.Success("File read with the %s encoding", res.Encoding)
	}
	slog.Info("history loaded", "path", path, "entries", len(res.Records), "encoding", res.Encoding, "size", res.Size)

	n := len(res.Records)
	if n > 0 {
		p.Success("%s %s found in %s (%s)",
			ui.Count(n), ui.Plural(n, "entry", "entries"),
			filepath.Base(path), ui.FileSize(res.Size))
	}
	return res.Records, nil
}

// syntaxMessage extracts the parser message and offset from a load error
func syntaxMessage(err error) string {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Sprintf("%v (offset %d)", syn, syn.Offset)
	}
	return err.Error()
}
