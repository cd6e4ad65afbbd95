// Package main is the entry point for worldedit.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/worldedit/internal/config"
	"github.com/samdwyer/worldedit/internal/telemetry"
)

var (
	configFile  string
	libraryPath string

	// Set by the persistent pre-run hook.
	cfg             *config.Config
	shutdownTracing func(context.Context) error
)

// main registers the commands, runs the one requested and exits with
// status 1 if it fails.
func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_WORLDEDIT_API_KEY available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	rootCmd := newRootCmd()
	err := rootCmd.Execute()

	if shutdownTracing != nil {
		if serr := shutdownTracing(context.Background()); serr != nil {
			log.Printf("Error shutting down telemetry: %v", serr)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "worldedit [file]",
		Short:             "grid editor for robot world scenes",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runEdit,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&libraryPath, "library", "", "scene library database path")
	rootCmd.Flags().StringVar(&templateID, "template", "", "start a new scene from a built-in template")

	rootCmd.AddCommand(
		newEditCmd(),
		newNewCmd(),
		newShowCmd(),
		newValidateCmd(),
		newConvertCmd(),
		newTemplatesCmd(),
		newApplyCmd(),
		newConfigCmd(),
		newLibraryCmd(),
	)
	return rootCmd
}

// setup loads the configuration and starts tracing before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	if libraryPath != "" {
		cfg.Library = libraryPath
	}

	if !cfg.Telemetry || !telemetry.ConfigureEnv() {
		return nil
	}
	shutdown, err := telemetry.Setup(cmd.Context())
	if err != nil {
		// Not fatal: without a provider all spans are no-ops.
		log.Printf("Warning: telemetry setup failed: %v", err)
		return nil
	}
	shutdownTracing = shutdown
	return nil
}
