package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/imsidplayer/sidratings/internal/fs"
	"github.com/imsidplayer/sidratings/internal/history"
	"github.com/imsidplayer/sidratings/internal/ui"
)

// Remove strips the rating field from every history entry, optionally
// backing the file up first.
func (c *CLI) Remove() error {
	slog.Debug("cli.remove started")
	defer slog.Debug("cli.remove finished")

	p := c.printer
	historyPath, ratingPath := c.historyPath(), c.ratingPath()

	p.Info("📁", "Config directory: %s", c.configDir)

	records, err := c.loadHistory(historyPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		p.Warn("No entries found in %s. Nothing to do.", filepath.Base(historyPath))
		return nil
	}

	rated := history.CountRated(records)
	p.Info("📊", "%s %s with a '%s' field", ui.Count(rated), ui.Plural(rated, "entry", "entries"), history.RatingKey)
	if rated == 0 {
		p.Success("No rating to remove. The file is already clean.")
		return nil
	}

	var backupPath string
	if c.backup && !c.option.DryRun {
		p.Section("💾", "Creating a backup...")
		dst, err := fs.Backup(historyPath, c.config.Backup.Prefix, c.now())
		if err != nil {
			slog.Warn("backup failed", "path", historyPath, "error", err)
			p.Warn("Backup failed: %v", err)
			if !c.confirm.Confirm("Continue anyway?") {
				p.Error("Operation canceled.")
				return ErrCanceled
			}
		} else {
			backupPath = dst
			slog.Info("backup created", "path", dst)
			p.Success("Backup created: %s", dst)
		}
	}

	p.Section("🔧", "Removing ratings...")
	stripped, removed := history.Strip(records)
	p.Success("%s %s removed", ui.Count(removed), ui.Plural(removed, "rating", "ratings"))

	if !fileExists(ratingPath) {
		fmt.Fprintln(p.Writer())
		p.Warn("Warning: %s does not exist.", ratingPath)
		p.Info("  ", "Make sure migrate-ratings ran before removing the ratings from %s.", filepath.Base(historyPath))
		if !c.option.DryRun && !c.confirm.Confirm("Continue anyway?") {
			p.Error("Operation canceled.")
			return ErrCanceled
		}
	}

	p.Section("💾", "Saving %s...", historyPath)
	if c.option.DryRun {
		p.Info("[DRY-RUN]", "%s %s to save", ui.Count(len(stripped)), ui.Plural(len(stripped), "entry", "entries"))
	}
	if err := c.writer().Write(historyPath, stripped); err != nil {
		slog.Error("failed to save history", "path", historyPath, "error", err)
		p.Error("Failed to save: %v", err)
		return reported(err)
	}

	if c.option.DryRun {
		p.Success("[DRY-RUN] Removal simulated successfully!")
		return nil
	}

	slog.Info("ratings removed", "path", historyPath, "entries", len(stripped), "removed", removed)
	p.Success("Removal completed successfully!")
	rows := []ui.Row{{Label: "Modified file", Value: historyPath}}
	if backupPath != "" {
		rows = append(rows, ui.Row{Label: "Backup", Value: backupPath})
	}
	rows = append(rows,
		ui.Row{Label: "Entries processed", Value: ui.Count(len(records))},
		ui.Row{Label: "Ratings removed", Value: ui.Count(removed)},
	)
	p.Summary(rows)
	p.Hint("Ratings now live only in %s", ratingPath)
	return nil
}
