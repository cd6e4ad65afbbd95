package editor

import (
	"io"
	"log"
	"time"

	"github.com/samdwyer/worldedit/internal/config"
	"github.com/samdwyer/worldedit/internal/ui"
)

// Options holds editor behavior settings.
type Options struct {
	// DoubleClick is the longest gap between two left clicks on the same
	// cell that still counts as a double click. Zero disables double clicks.
	DoubleClick time.Duration

	Theme  ui.Theme
	Logger *log.Logger
}

// OptionsFromConfig builds editor options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config, logger *log.Logger) (Options, error) {
	theme, err := ui.NewTheme(cfg.Theme)
	if err != nil {
		return Options{}, err
	}
	if logger == nil {
		logger = discardLogger()
	}
	return Options{
		DoubleClick: time.Duration(cfg.DoubleClickMs) * time.Millisecond,
		Theme:       theme,
		Logger:      logger,
	}, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
