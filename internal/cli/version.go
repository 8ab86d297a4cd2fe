package cli

import (
	"fmt"

	"peopled/internal/server"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("peopled v%s\n", server.Version)
	},
}
