package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// MarshalJSON renders v the way every document of this tool is written:
// two-space indentation, non-ASCII and HTML characters left as is.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSONWriter writes documents to disk, or only shows them in dry-run mode.
type JSONWriter struct {
	// DryRun prints what would be written to Out instead of writing it.
	DryRun bool
	Out    io.Writer
}

// Write serializes v to path. In dry-run mode the exact bytes are printed
// and the filesystem is not touched.
func (w JSONWriter) Write(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if w.DryRun {
		slog.Debug("dry-run: skip writing", "path", path, "bytes", len(data))
		fmt.Fprintf(w.Out, "[DRY-RUN] Writing to %s\n", path)
		_, err := w.Out.Write(data)
		return err
	}

	if err := WriteFile(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Debug("document written", "path", path, "bytes", len(data))
	return nil
}
