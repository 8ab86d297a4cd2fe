package cli

import (
	"fmt"

	"peopled/internal/server"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tool catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		app, cleanup, err := server.New(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		for _, def := range app.Registry.Definitions() {
			fmt.Printf("%-18s %s\n", def.Name, def.Description)
		}
		return nil
	},
}
