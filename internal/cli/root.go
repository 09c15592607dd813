// Package cli implements the developer command line for exercising the
// module outside the Workbench host: fetch against the live API with a
// user-supplied token, render stored fetch files, print scope metadata.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/CJWorkbench/googlesheets/internal/config"
	"github.com/CJWorkbench/googlesheets/internal/logger"
)

var (
	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "googlesheets",
	Short: "Workbench Google Sheets step, run from the command line",
	Long: `Runs the Workbench Google Sheets step outside the host platform.

The host normally supplies parameters and an OAuth2 access token per
invocation; here they come from flags, the environment, or the config
file (~/.googlesheets/config.toml).`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configDir)
		if err != nil {
			return err
		}
		logger.SetVerbose(verboseFlag || cfg.Verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"config directory (default ~/.googlesheets)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
