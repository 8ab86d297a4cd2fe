// Package cli implements the peopled CLI commands.
package cli

import (
	"peopled/internal/config"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	datasetPath string
	dbPath      string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "peopled",
	Short: "People directory query service",
	Long: "A people-directory query service: exact and fuzzy name lookup plus\n" +
		"multi-criteria listing, exposed as MCP tools and a terminal chat.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.peopled/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "Employee CSV path (default: built-in sample roster)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Chat history database path (default: ~/.peopled/chat_history.db)")

	RootCmd.AddCommand(serveCmd, chatCmd, historyCmd, toolsCmd, versionCmd)
}

// loadConfig resolves the effective configuration: file (or defaults),
// then flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if datasetPath != "" {
		cfg.DatasetPath = datasetPath
	}
	if dbPath != "" {
		cfg.HistoryDB = dbPath
	}
	return cfg, nil
}
