package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// PingTool handles the ping tool — the dispatcher liveness check.
type PingTool struct {
	now func() time.Time
}

// NewPingTool creates a PingTool.
func NewPingTool() *PingTool {
	return &PingTool{now: time.Now}
}

// Definition returns the MCP tool definition for ping.
func (t *PingTool) Definition() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health check - returns pong with timestamp"),
	)
}

// Handle processes the ping tool call.
func (t *PingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(fmt.Sprintf("pong - %s", t.now().Format(time.RFC3339))), nil
}
