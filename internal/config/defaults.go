package config

import (
	"slices"

	"github.com/imsidplayer/sidratings/internal/history"
	"github.com/imsidplayer/sidratings/internal/rating"
)

// DefaultBackupPrefix names backups history_backup_<timestamp>.json
const DefaultBackupPrefix = "history_backup_"

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		History: History{
			Filename:  history.Filename,
			Encodings: slices.Clone(history.DefaultEncodings),
		},
		Rating: Rating{
			Filename: rating.Filename,
		},
		Backup: Backup{
			Prefix: DefaultBackupPrefix,
		},
		Prompt: Prompt{
			Style: "auto", // or plain, tui
		},
		Logging: Logging{
			Enabled: false,
			Level:   "info",
			Rotation: Rotation{
				MaxSize:  "10MB",
				MaxFiles: 3,
			},
		},
	}
}
