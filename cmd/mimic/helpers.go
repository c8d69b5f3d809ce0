package main

import (
	"github.com/urfave/cli/v2"

	"github.com/codemimic/mimic/internal/output"
	"github.com/codemimic/mimic/internal/progress"
	"github.com/codemimic/mimic/pkg/config"
)

// loadConfig loads the config named by --config, or searches the standard
// locations when the flag is unset.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

// newTracker returns a progress tracker, silenced for machine-readable
// formats so the bar never interleaves with structured output.
func newTracker(c *cli.Context, label string, total int) *progress.Tracker {
	format := output.ParseFormat(c.String("format"))
	if format != output.FormatText {
		return progress.NewSilent(label)
	}
	return progress.NewTracker(label, total)
}
