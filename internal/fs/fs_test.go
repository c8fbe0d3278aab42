package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// createTempDir creates a temporary directory for testing
func createTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "sidratings-fs-test-")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}

// createTestFile creates a test file with given content
func createTestFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

// listDir returns the names in dir
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read directory: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCreateExclusive(t *testing.T) {
	dir := createTempDir(t)
	testPath := filepath.Join(dir, "testfile.txt")

	f, err := CreateExclusive(testPath, 0644)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	f.Close()

	// Second create should fail (file already exists)
	if _, err := CreateExclusive(testPath, 0644); err == nil {
		t.Fatal("Expected error when creating existing file, got nil")
	}
}

func TestWriteFile(t *testing.T) {
	dir := createTempDir(t)
	path := filepath.Join(dir, "nested", "deeper", "rating.json")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		t.Fatalf("Failed to chmod: %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile() overwrite failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "second" {
		t.Errorf("content = %q, want %q", content, "second")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(0600))
	}

	// No temporary files left behind
	if names := listDir(t, filepath.Dir(path)); len(names) != 1 {
		t.Errorf("Expected only the target file, got %v", names)
	}
}

func TestWriteFileDirectoryError(t *testing.T) {
	dir := createTempDir(t)
	blocker := filepath.Join(dir, "blocker")
	createTestFile(t, blocker, "not a directory")

	err := WriteFile(filepath.Join(blocker, "rating.json"), []byte("{}"))
	if err == nil {
		t.Fatal("Expected error when parent is a file, got nil")
	}
}

func TestJSONWriter(t *testing.T) {
	value := map[string]any{
		"title":  "Ōkami <live> & more",
		"rating": 4,
	}

	dir := createTempDir(t)
	path := filepath.Join(dir, "out.json")

	var out bytes.Buffer
	dry := JSONWriter{DryRun: true, Out: &out}
	if err := dry.Write(path, value); err != nil {
		t.Fatalf("dry-run Write() failed: %v", err)
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Fatalf("dry-run created files: %v", names)
	}

	header := "[DRY-RUN] Writing to " + path + "\n"
	if !strings.HasPrefix(out.String(), header) {
		t.Fatalf("dry-run output missing header: %q", out.String())
	}
	printed := strings.TrimPrefix(out.String(), header)

	writer := JSONWriter{Out: &out}
	if err := writer.Write(path, value); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(written) != printed {
		t.Errorf("dry-run printed\n%s\nbut real run wrote\n%s", printed, written)
	}

	want := "{\n  \"rating\": 4,\n  \"title\": \"Ōkami <live> & more\"\n}\n"
	if string(written) != want {
		t.Errorf("written = %q, want %q", written, want)
	}
}

func TestBackupPath(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 2, 0, time.Local)
	got := BackupPath("/cfg/.imsidplayer/history.json", "history_backup_", ts)
	want := filepath.Join("/cfg/.imsidplayer", "history_backup_20240309_070502.json")
	if got != want {
		t.Errorf("BackupPath() = %q, want %q", got, want)
	}
}

func TestBackup(t *testing.T) {
	dir := createTempDir(t)
	src := filepath.Join(dir, "history.json")
	createTestFile(t, src, `[{"rating": 5}]`)

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(src, mtime, mtime); err != nil {
		t.Fatalf("Failed to set times: %v", err)
	}

	now := time.Date(2024, 12, 31, 23, 59, 58, 0, time.Local)
	dst, err := Backup(src, "history_backup_", now)
	if err != nil {
		t.Fatalf("Backup() failed: %v", err)
	}
	if filepath.Base(dst) != "history_backup_20241231_235958.json" {
		t.Errorf("backup name = %q", filepath.Base(dst))
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read backup: %v", err)
	}
	if string(content) != `[{"rating": 5}]` {
		t.Errorf("backup content = %q", content)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("Failed to stat backup: %v", err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Errorf("backup mtime = %v, want %v", info.ModTime(), mtime)
	}
}

func TestBackupMissingSource(t *testing.T) {
	dir := createTempDir(t)
	if _, err := Backup(filepath.Join(dir, "history.json"), "history_backup_", time.Now()); err == nil {
		t.Fatal("Expected error when source is missing, got nil")
	}
}
