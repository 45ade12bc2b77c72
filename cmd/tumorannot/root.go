package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tumorannot/pkg/config"
)

// Version is the application version.
const Version = "0.1.0"

var (
	// cfg is the loaded configuration shared by subcommands
	cfg *config.Config
	// cfgPath is the configuration file location
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:     "tumorannot",
	Short:   "Extreme-point tumor bounding box annotation for 3D medical volumes",
	Version: Version, // This enables the --version flag
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing config file falls back to defaults
		var err error
		cfg, err = config.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "tumorannot.yaml", "Path to YAML configuration file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
