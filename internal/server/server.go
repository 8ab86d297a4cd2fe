// Package server wires all components and creates the server instance.
//
// This is the composition root: it creates concrete implementations
// and injects them into the tools and services that depend on
// abstractions. No business logic lives here — only wiring.
package server

import (
	"log"
	"time"

	"peopled/internal/chat"
	"peopled/internal/config"
	"peopled/internal/directory"
	"peopled/internal/history"
	"peopled/internal/intent"
	"peopled/internal/tools"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// App holds the wired service graph. Transports pick the piece they
// need: the MCP server for stdio clients, Chat for the REPL.
type App struct {
	Directory *directory.Store
	Registry  *tools.Registry
	History   *history.Store
	Chat      *chat.Service
}

// New resolves all dependencies from the configuration.
//
// The transcript store is an independent subsystem: if it fails to
// initialize, queries still work and the failure is logged — a chat
// without replayable history beats no chat at all. The returned
// cleanup function closes the store and is always safe to call.
func New(cfg config.Config) (*App, func(), error) {
	dir, err := directory.New(directory.Config{DatasetPath: cfg.DatasetPath})
	if err != nil {
		return nil, noop, err
	}

	registry := tools.NewRegistry(dir)

	cleanup := noop
	hist, histErr := history.New(history.Config{DBPath: cfg.HistoryDB})
	if histErr != nil {
		log.Printf("WARNING: transcript persistence disabled: %v", histErr)
		hist = nil
	} else {
		cleanup = func() {
			if err := hist.Close(); err != nil {
				log.Printf("WARNING: history store close: %v", err)
			}
		}
	}

	var primary intent.Classifier
	if llm := intent.NewLLM(cfg.OpenAI.APIKey, cfg.OpenAI.Model, time.Duration(cfg.OpenAI.Timeout)); llm != nil {
		primary = llm
	}
	classifier := intent.NewRouter(primary, intent.NewRules())

	return &App{
		Directory: dir,
		Registry:  registry,
		History:   hist,
		Chat:      chat.New(registry, classifier, hist),
	}, cleanup, nil
}

// MCPServer creates the MCP server with the full tool catalog
// registered, for the stdio transport.
func (a *App) MCPServer() *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"peopled",
		Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(serverInstructions()),
	)

	for _, t := range a.Registry.Tools() {
		s.AddTool(t.Definition(), t.Handle)
	}

	return s
}

// noop is the default cleanup when nothing needs closing.
func noop() {}

func serverInstructions() string {
	return `You have access to a people directory.

Use get_person_exact when the user gives a complete name, and
get_person_fuzzy when the name may be partial or misspelled. Use
list_people to filter by department, role, location, salary, or age —
salary and age bounds are inclusive. Use ping to check that the
directory service is alive.`
}
