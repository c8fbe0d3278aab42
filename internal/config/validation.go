package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/imsidplayer/sidratings/internal/history"
)

var sizeRe = regexp.MustCompile(`^\d+(KB|MB|GB|TB|PB)$`)

// validateSize validates the size format (e.g., "10MB", "1GB")
func validateSize(fl validator.FieldLevel) bool {
	return sizeRe.MatchString(strings.ToUpper(fl.Field().String()))
}

// validateEncoding accepts the encodings the history loader knows
func validateEncoding(fl validator.FieldLevel) bool {
	return history.IsSupportedEncoding(fl.Field().String())
}

// validateBasename accepts a plain file name that stays inside the
// player directory.
func validateBasename(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	switch name {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// expandPath expands environment variables and "~" in paths
func expandPath(path string) (string, error) {
	// Expand "~" to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}

	// Expand environment variables
	path = os.ExpandEnv(path)

	// Convert to absolute path
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return abs, nil
}
