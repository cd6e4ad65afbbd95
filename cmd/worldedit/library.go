package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/samdwyer/worldedit/internal/library"
	"github.com/samdwyer/worldedit/internal/scene"
)

func newLibraryCmd() *cobra.Command {
	libCmd := &cobra.Command{
		Use:   "library",
		Short: "manage the scene library",
	}

	putCmd := &cobra.Command{
		Use:   "put [name] [file]",
		Short: "store a scene file under a name",
		Args:  cobra.ExactArgs(2),
		RunE: withLibrary(func(cmd *cobra.Command, lib *library.Library, args []string) error {
			doc, err := scene.ReadFile(args[1])
			if err != nil {
				return err
			}
			e, err := lib.Put(cmd.Context(), args[0], doc)
			if err != nil {
				return err
			}
			fmt.Printf("stored %s (%dx%d) id %s\n", e.Name, e.Width, e.Length, e.ID)
			return nil
		}),
	}

	getCmd := &cobra.Command{
		Use:   "get [name] [file]",
		Short: "write a stored scene to a file, or print it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: withLibrary(func(cmd *cobra.Command, lib *library.Library, args []string) error {
			doc, err := lib.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				fmt.Println(doc.String())
				return nil
			}
			if err := scene.WriteFile(args[1], doc); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[1])
			return nil
		}),
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored scenes",
		Args:  cobra.NoArgs,
		RunE: withLibrary(func(cmd *cobra.Command, lib *library.Library, args []string) error {
			entries, err := lib.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("library is empty")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tUPDATED\tID")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\n", e.Name, e.Width, e.Length, humanize.Time(e.UpdatedAt), e.ID)
			}
			return w.Flush()
		}),
	}

	rmCmd := &cobra.Command{
		Use:   "rm [name]",
		Short: "remove a stored scene",
		Args:  cobra.ExactArgs(1),
		RunE: withLibrary(func(cmd *cobra.Command, lib *library.Library, args []string) error {
			return lib.Delete(cmd.Context(), args[0])
		}),
	}

	libCmd.AddCommand(putCmd, getCmd, listCmd, rmCmd)
	return libCmd
}

// withLibrary opens the configured library around a command.
func withLibrary(run func(*cobra.Command, *library.Library, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		lib, err := library.Open(cfg.Library)
		if err != nil {
			return fmt.Errorf("open library %s: %w", cfg.Library, err)
		}
		defer lib.Close()
		return run(cmd, lib, args)
	}
}
