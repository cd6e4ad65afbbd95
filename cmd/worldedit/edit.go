package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/worldedit/internal/editor"
	"github.com/samdwyer/worldedit/internal/scene"
)

var templateID string

func newEditCmd() *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "open the interactive editor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEdit,
	}
	editCmd.Flags().StringVar(&templateID, "template", "", "start a new scene from a built-in template")
	return editCmd
}

// runEdit opens the editor on the given file. A file that does not exist
// yet becomes the save target of a new scene.
func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	// The terminal belongs to the editor from here on.
	log.SetOutput(logFile)
	defer log.SetOutput(os.Stderr)
	logger := log.New(logFile, "worldedit ", log.LstdFlags)

	session, err := newSession(args)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := session.Load(ctx, args[0]); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			session.SetPath(args[0])
		}
	}

	opts, err := editor.OptionsFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	ed, err := editor.New(session, opts)
	if err != nil {
		return fmt.Errorf("failed to initialize editor: %w", err)
	}
	return ed.Run(ctx)
}

// newSession starts from the requested template or from the configured size.
func newSession(args []string) (*editor.Session, error) {
	if templateID == "" {
		return editor.NewBlankSession(cfg.Width, cfg.Length, cfg.Settings())
	}

	registry, err := scene.LoadTemplateRegistry()
	if err != nil {
		return nil, err
	}
	tpl := registry.GetByID(templateID)
	if tpl == nil {
		return nil, fmt.Errorf("unknown template: %s (available: %v)", templateID, registry.IDs())
	}
	g, settings, err := tpl.Grid()
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if _, err := os.Stat(args[0]); err == nil {
			return nil, fmt.Errorf("%s already exists; open it without --template", args[0])
		}
	}
	return editor.NewSession(g, settings), nil
}
