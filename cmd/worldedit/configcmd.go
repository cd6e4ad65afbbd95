package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/worldedit/internal/config"
)

var configForce bool

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the editor configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the current settings to a yaml file",
		Long:  "Writes the settings in effect (defaults, file and environment) to file, or to " + config.DefaultFileName + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFileName
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !configForce {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
