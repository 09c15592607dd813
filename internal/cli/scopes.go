package cli

import (
	"github.com/spf13/cobra"

	"github.com/CJWorkbench/googlesheets"
)

var scopesCmd = &cobra.Command{
	Use:   "scopes",
	Short: "Print the OAuth2 scopes the host should request",
	Run: func(cmd *cobra.Command, args []string) {
		for _, scope := range googlesheets.Scopes() {
			cmd.Println(scope)
		}
	},
}

func init() {
	rootCmd.AddCommand(scopesCmd)
}
