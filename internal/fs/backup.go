package fs

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	cp "github.com/otiai10/copy"
)

// BackupTimeFormat is the timestamp appended to backup file names.
const BackupTimeFormat = "20060102_150405"

// BackupPath returns the backup location for src taken at t:
// <dir of src>/<prefix><YYYYMMDD_HHMMSS><ext of src>.
func BackupPath(src, prefix string, t time.Time) string {
	return filepath.Join(
		filepath.Dir(src),
		prefix+t.Format(BackupTimeFormat)+filepath.Ext(src),
	)
}

// Backup copies src with its permissions and timestamps to BackupPath and
// returns the path of the copy.
func Backup(src, prefix string, now time.Time) (string, error) {
	dst := BackupPath(src, prefix, now)
	slog.Debug("backing up", "src", src, "dst", dst)

	if err := cp.Copy(src, dst, cp.Options{
		PreserveTimes: true,
		Sync:          true,
	}); err != nil {
		return "", fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return dst, nil
}
