package env

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

const (
	// PlayerDirname is the directory the player keeps its state in.
	PlayerDirname = ".imsidplayer"

	appName = "sidratings"
)

var (
	SIDRATINGS_CONFIG_PATH string

	SIDRATINGS_LOG_PATH string
)

func init() {
	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	if e := os.Getenv("SIDRATINGS_CONFIG_PATH"); e != "" {
		SIDRATINGS_CONFIG_PATH = e
	} else {
		SIDRATINGS_CONFIG_PATH = filepath.Join(xdg.ConfigHome, appName, "config.yaml")
	}

	if e := os.Getenv("SIDRATINGS_LOG_PATH"); e != "" {
		SIDRATINGS_LOG_PATH = e
	} else {
		SIDRATINGS_LOG_PATH = filepath.Join(xdg.DataHome, appName, "debug.log")
	}
}

// Lookup is the environment the config locator reads from.
type Lookup struct {
	GOOS   string
	Getenv func(string) string
	Getwd  func() (string, error)
}

// System returns a Lookup backed by the running process.
func System() Lookup {
	return Lookup{
		GOOS:   runtime.GOOS,
		Getenv: os.Getenv,
		Getwd:  os.Getwd,
	}
}

// ConfigDir returns the player config directory. A non-empty override is
// returned as is.
func ConfigDir(override string) string {
	if override != "" {
		return override
	}
	return System().ConfigDir()
}

// ConfigDir resolves the player config directory:
//
//	windows: %APPDATA%, then %USERPROFILE%
//	others:  $HOME
//
// falling back to the working directory when none is set.
func (l Lookup) ConfigDir() string {
	var base string
	if l.GOOS == "windows" {
		base = l.Getenv("APPDATA")
		if base == "" {
			base = l.Getenv("USERPROFILE")
		}
	} else {
		base = l.Getenv("HOME")
	}

	if base == "" {
		return filepath.Join(l.workDir(), PlayerDirname)
	}
	return filepath.Join(base, PlayerDirname)
}

func (l Lookup) workDir() string {
	if l.Getwd == nil {
		return "."
	}
	wd, err := l.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
