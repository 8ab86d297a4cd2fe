// Package tools implements the directory query tools and the registry
// that dispatches named tool calls to them.
//
// Each tool follows the same pattern:
// - A struct with dependencies (directory.Store) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Tools are pure reads over the current roster snapshot; they never
// write to the transcript store — persisting the round-trip is the
// caller's job, after dispatch returns.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	switch v := req.GetArguments()[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return defaultVal
	}
}

// optionalInt extracts an integer argument that distinguishes "absent"
// from zero. Returns nil when the key is missing or non-numeric.
func optionalInt(req mcp.CallToolRequest, key string) *int {
	switch v := req.GetArguments()[key].(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	default:
		return nil
	}
}

// resultWithData builds a text result carrying the human-readable
// summary plus a JSON dump of the matched records, and attaches the
// records as structured content for programmatic consumers.
func resultWithData(summary string, data any) *mcp.CallToolResult {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(summary)
	}
	res := mcp.NewToolResultText(fmt.Sprintf("%s\nFull data: %s", summary, encoded))
	res.StructuredContent = data
	return res
}
