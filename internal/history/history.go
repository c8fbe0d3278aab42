package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

const (
	// Filename is the history log written by the player.
	Filename = "history.json"

	entriesKey = "entries"
)

// Result is what Load found in a history file.
type Result struct {
	Records  []Record
	Encoding string // encoding the file was decoded with
	Size     int64  // file size in bytes
}

// IsDefaultEncoding reports whether the file was plain UTF-8.
func (r Result) IsDefaultEncoding() bool {
	return r.Encoding == utf8Encoding
}

// Load reads a history document and returns its entries. The file is decoded
// with each encoding in turn until one succeeds; nil or empty encodings means
// DefaultEncodings.
//
// Once an encoding decodes the bytes, its outcome is final: a JSON syntax
// error or an unexpected document shape stops the search instead of trying
// the next encoding.
func Load(path string, encodings []string) (Result, error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, &LoadError{Path: path, Err: ErrNotFound}
		}
		return Result{}, &LoadError{Path: path, Err: err}
	}

	for _, enc := range encodings {
		text, err := decode(enc, b)
		if err != nil {
			slog.Debug("decode failed, trying next encoding", "path", path, "encoding", enc, "error", err)
			continue
		}

		records, err := parse(text)
		if err != nil {
			return Result{}, &LoadError{Path: path, Encoding: enc, Err: err}
		}
		slog.Debug("history loaded", "path", path, "encoding", enc, "entries", len(records))
		return Result{
			Records:  records,
			Encoding: enc,
			Size:     int64(len(b)),
		}, nil
	}

	return Result{}, &LoadError{
		Path: path,
		Err:  fmt.Errorf("%w with the tested encodings: %v", ErrUndecodable, encodings),
	}
}

// parse accepts either a bare array of entries or an object holding them
// under "entries".
func parse(text []byte) ([]Record, error) {
	var doc json.RawMessage
	if err := json.Unmarshal(text, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	switch firstByte(doc) {
	case '[':
		return parseEntries(doc)
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(doc, &obj); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if entries, ok := obj[entriesKey]; ok && firstByte(entries) == '[' {
			return parseEntries(entries)
		}
	}
	return nil, ErrUnexpectedShape
}

func parseEntries(data json.RawMessage) ([]Record, error) {
	records := []Record{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return records, nil
}

func firstByte(b []byte) byte {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
