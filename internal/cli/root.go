// Package cli implements the unitconv command line interface.
// It is the embedding application around the dimensional library:
// all unit selection happens here by flag value, while every
// conversion is delegated to the typed library packages.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/dimensional/internal/logger"
)

var version = "dev"

var (
	verboseFlag bool
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Convert physical quantities between units",
	Long: `unitconv converts values between units of force, mass, temperature
and duration. Every conversion routes through the dimension's base unit
(newton, kilogram, kelvin, second).`,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "print conversion steps to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default ~/.unitconv/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion records the version string printed by the version command.
// The main package injects the build-time value.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
