package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"peopled/internal/server"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio transport)",
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

		// Dataset watcher stops on interrupt; the stdio server
		// manages its own lifecycle on stdin EOF.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go app.Directory.Watch(ctx)

		return mcpserver.ServeStdio(app.MCPServer())
	},
}
