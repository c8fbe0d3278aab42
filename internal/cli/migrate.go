package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/imsidplayer/sidratings/internal/rating"
	"github.com/imsidplayer/sidratings/internal/ui"
)

// Migrate copies the ratings found in the history file into the rating file.
func (c *CLI) Migrate() error {
	slog.Debug("cli.migrate started")
	defer slog.Debug("cli.migrate finished")

	p := c.printer
	historyPath, ratingPath := c.historyPath(), c.ratingPath()

	p.Info("📁", "Config directory: %s", c.configDir)

	records, err := c.loadHistory(historyPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		p.Warn("No entries found in %s. Nothing to migrate.", filepath.Base(historyPath))
		return nil
	}

	p.Section("🔍", "Extracting ratings...")
	ratings := rating.Extract(records)
	if len(ratings) == 0 {
		p.Warn("No rating > 0 found in %s. Nothing to migrate.", filepath.Base(historyPath))
		return nil
	}
	p.Success("%s %s found (rating > 0)", ui.Count(len(ratings)), ui.Plural(len(ratings), "rating", "ratings"))
	slog.Info("ratings extracted", "entries", len(records), "ratings", len(ratings))

	p.Distribution(ratings.Distribution())

	doc := rating.NewDocument(ratings)
	if err := doc.Validate(); err != nil {
		p.Error("The rating document is invalid: %v", err)
		return reported(fmt.Errorf("validate rating document: %w", err))
	}

	if !c.option.DryRun && fileExists(ratingPath) {
		fmt.Fprintln(p.Writer())
		p.Warn("%s already exists.", ratingPath)
		if !c.confirm.Confirm("Replace it?") {
			slog.Info("replace declined", "path", ratingPath)
			p.Error("Migration canceled.")
			return ErrCanceled
		}
	}

	p.Section("💾", "Saving to %s...", ratingPath)
	if err := c.writer().Write(ratingPath, doc); err != nil {
		slog.Error("failed to save ratings", "path", ratingPath, "error", err)
		p.Error("Failed to save: %v", err)
		return reported(err)
	}

	if c.option.DryRun {
		p.Success("[DRY-RUN] Migration simulated successfully!")
		return nil
	}

	slog.Info("ratings migrated", "path", ratingPath, "ratings", len(ratings))
	p.Success("Migration completed successfully!")
	p.Summary([]ui.Row{
		{Label: "Source file", Value: historyPath},
		{Label: "Destination file", Value: ratingPath},
		{Label: "Ratings migrated", Value: ui.Count(len(ratings))},
	})
	p.Hint("Next step: run remove-ratings to drop the ratings from %s", filepath.Base(historyPath))
	return nil
}
