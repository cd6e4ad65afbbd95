package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samdwyer/worldedit/internal/preview"
	"github.com/samdwyer/worldedit/internal/scene"
	"github.com/samdwyer/worldedit/internal/world"
)

var (
	newWidth   int
	newLength  int
	newActions string
	newBeepers string
	newForce   bool
	plain      bool
)

func newNewCmd() *cobra.Command {
	newCmd := &cobra.Command{
		Use:   "new [file]",
		Short: "write a new blank or template scene",
		Args:  cobra.ExactArgs(1),
		RunE:  newScene,
	}
	newCmd.Flags().IntVar(&newWidth, "width", 0, "scene width (default from config)")
	newCmd.Flags().IntVar(&newLength, "length", 0, "scene length (default from config)")
	newCmd.Flags().StringVar(&newActions, "actions", "", "actions limit")
	newCmd.Flags().StringVar(&newBeepers, "beepers", "", "initial beepers count")
	newCmd.Flags().StringVar(&templateID, "template", "", "built-in template")
	newCmd.Flags().BoolVar(&newForce, "force", false, "overwrite an existing file")
	return newCmd
}

func newScene(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !newForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	session, err := newSession(nil)
	if err != nil {
		return err
	}
	g, settings := session.Grid(), session.Settings()

	width, length := g.Width(), g.Length()
	if newWidth > 0 {
		width = newWidth
	}
	if newLength > 0 {
		length = newLength
	}
	if err := g.Resize(width, length); err != nil {
		return err
	}
	if newActions != "" {
		settings.ActionsLimit = newActions
	}
	if newBeepers != "" {
		settings.InitialBeepersCount = newBeepers
	}

	if err := scene.Save(cmd.Context(), path, g, settings); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d)\n", path, width, length)
	return nil
}

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show [file]",
		Short: "print a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, settings, err := scene.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			theme := preview.DefaultTheme()
			if plain {
				theme = preview.PlainTheme()
			}
			fmt.Println(preview.Render(g, settings, theme))
			return nil
		},
	}
	showCmd.Flags().BoolVar(&plain, "plain", false, "no colors")
	return showCmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]...",
		Short: "check that scene files load",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				g, _, err := scene.Load(cmd.Context(), path)
				if err != nil {
					failed++
					fmt.Printf("FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Printf("ok   %s %dx%d%s\n", path, g.Width(), g.Length(), warnings(g))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}

// warnings notes scenes the simulator would likely reject. They are not
// errors: the editor allows any agent count.
func warnings(g *world.Grid) string {
	switch n := g.Count().Agents; {
	case n == 0:
		return " (no agent)"
	case n > 1:
		return fmt.Sprintf(" (%d agents)", n)
	}
	return ""
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [in] [out]",
		Short: "re-encode a scene, e.g. to or from .json.zst",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, settings, err := scene.Load(ctx, args[0])
			if err != nil {
				return err
			}
			if err := scene.Save(ctx, args[1], g, settings); err != nil {
				if errors.Is(err, scene.ErrIO) {
					return fmt.Errorf("convert: %w", err)
				}
				return err
			}
			fmt.Printf("wrote %s\n", args[1])
			return nil
		},
	}
}

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "list built-in templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := scene.LoadTemplateRegistry()
			if err != nil {
				return err
			}
			fmt.Printf("%d templates:\n", registry.Count())
			for _, tpl := range registry.All() {
				w, l := tpl.Document().Dimensions()
				fmt.Printf("  %-14s %3dx%-3d %s\n", tpl.ID, w, l, tpl.Description)
			}
			return nil
		},
	}
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [file] [gesture] [x] [y]",
		Short: "apply one gesture to a cell of a scene file",
		Long: "Gestures: set_wall, clear_cell, rotate_or_add_agent, increment_marker, decrement_marker.\n" +
			"Coordinates are zero-based with y = 0 on the bottom row.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			gesture, err := world.ParseGesture(args[1])
			if err != nil {
				return err
			}
			x, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("bad x coordinate %q", args[2])
			}
			y, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("bad y coordinate %q", args[3])
			}

			g, settings, err := scene.Load(ctx, args[0])
			if err != nil {
				return err
			}
			cell, ok := g.Apply(x, y, gesture)
			if !ok {
				return fmt.Errorf("(%d,%d) is outside the %dx%d scene", x, y, g.Width(), g.Length())
			}
			if err := scene.Save(ctx, args[0], g, settings); err != nil {
				return err
			}
			log.Printf("%s at (%d,%d) in %s", gesture, x, y, args[0])
			fmt.Printf("(%d,%d) is now %q\n", x, y, cell.Rune())
			return nil
		},
	}
}
