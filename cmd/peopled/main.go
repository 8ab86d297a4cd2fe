// Peopled: people-directory query service.
//
// Exposes exact name lookup, substring name search, and multi-criteria
// listing over an in-memory roster, as MCP tools (stdio transport) and
// as a terminal chat with persistent session transcripts.
//
// Usage:
//
//	peopled serve              # Start the MCP server (stdio transport)
//	peopled chat               # Chat with the directory
//	peopled history <session>  # Print a session transcript
//	peopled tools              # List the tool catalog
package main

import (
	"fmt"
	"os"

	"peopled/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
