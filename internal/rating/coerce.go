package rating

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotInteger indicates a JSON value that cannot be read as an integer
var ErrNotInteger = errors.New("not an integer")

// digits with single underscores between groups, e.g. "1_000"
var intLiteral = regexp.MustCompile(`^[0-9]+(_[0-9]+)*$`)

// Coerce reads a raw JSON value as an integer, the way the player's own
// tooling did: integers as is, other numbers truncated toward zero, booleans
// as 0/1 and strings holding a (signed, optionally underscored) decimal
// integer with surrounding whitespace ignored.
func Coerce(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, ErrNotInteger
	}

	switch raw[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return 0, ErrNotInteger
		}
		if b {
			return 1, nil
		}
		return 0, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, ErrNotInteger
		}
		return parseIntString(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return parseNumber(string(raw))
	default:
		return 0, ErrNotInteger
	}
}

func parseNumber(s string) (int64, error) {
	if !strings.ContainsAny(s, ".eE") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, ErrNotInteger
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrNotInteger
	}
	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, ErrNotInteger
	}
	return int64(f), nil
}

func parseIntString(s string) (int64, error) {
	s = strings.TrimSpace(s)
	sign := ""
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign, s = s[:1], s[1:]
	}
	if !intLiteral.MatchString(s) {
		return 0, ErrNotInteger
	}
	n, err := strconv.ParseInt(sign+strings.ReplaceAll(s, "_", ""), 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	return n, nil
}
