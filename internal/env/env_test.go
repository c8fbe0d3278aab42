package env

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestConfigDir(t *testing.T) {
	wd := func() (string, error) { return "/work", nil }

	testCases := []struct {
		name string
		goos string
		vars map[string]string
		want string
	}{
		{
			name: "unix uses HOME",
			goos: "linux",
			vars: map[string]string{"HOME": "/home/alice", "APPDATA": "/ignored"},
			want: filepath.Join("/home/alice", PlayerDirname),
		},
		{
			name: "unix falls back to working directory",
			goos: "darwin",
			vars: map[string]string{"APPDATA": "/ignored"},
			want: filepath.Join("/work", PlayerDirname),
		},
		{
			name: "windows prefers APPDATA",
			goos: "windows",
			vars: map[string]string{"APPDATA": "/appdata", "USERPROFILE": "/profile", "HOME": "/home"},
			want: filepath.Join("/appdata", PlayerDirname),
		},
		{
			name: "windows falls back to USERPROFILE",
			goos: "windows",
			vars: map[string]string{"USERPROFILE": "/profile", "HOME": "/home"},
			want: filepath.Join("/profile", PlayerDirname),
		},
		{
			name: "windows ignores HOME",
			goos: "windows",
			vars: map[string]string{"HOME": "/home"},
			want: filepath.Join("/work", PlayerDirname),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := Lookup{
				GOOS:   tc.goos,
				Getenv: func(k string) string { return tc.vars[k] },
				Getwd:  wd,
			}
			if got := l.ConfigDir(); got != tc.want {
				t.Errorf("ConfigDir() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestConfigDirWorkDirError(t *testing.T) {
	l := Lookup{
		GOOS:   "linux",
		Getenv: func(string) string { return "" },
		Getwd:  func() (string, error) { return "", errors.New("gone") },
	}
	want := filepath.Join(".", PlayerDirname)
	if got := l.ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigDirOverride(t *testing.T) {
	t.Setenv("HOME", "/home/bob")

	if got := ConfigDir("/custom/dir"); got != "/custom/dir" {
		t.Errorf("ConfigDir(override) = %q, want %q", got, "/custom/dir")
	}
}
