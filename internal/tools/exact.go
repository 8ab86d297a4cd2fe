package tools

import (
	"context"
	"fmt"
	"strings"

	"peopled/internal/directory"

	"github.com/mark3labs/mcp-go/mcp"
)

// ExactTool handles the get_person_exact tool.
type ExactTool struct {
	store *directory.Store
}

// NewExactTool creates an ExactTool.
func NewExactTool(store *directory.Store) *ExactTool {
	return &ExactTool{store: store}
}

// Definition returns the MCP tool definition for get_person_exact.
func (t *ExactTool) Definition() mcp.Tool {
	return mcp.NewTool("get_person_exact",
		mcp.WithDescription("Find people with exact name match (case-insensitive)"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name to search for"),
		),
	)
}

// Handle processes the get_person_exact tool call. Equality is checked
// against both the full and the preferred name, and every tie is
// returned — two people sharing a name both show up.
func (t *ExactTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	matches := []directory.Person{}
	for _, p := range t.store.Snapshot() {
		if strings.EqualFold(p.FullName, name) || strings.EqualFold(p.PreferredName, name) {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No person found with exact name: %s", name)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d exact match(es) for '%s':\n", len(matches), name)
	for _, p := range matches {
		fmt.Fprintf(&b, "- %s (%s) - %s in %s\n", p.FullName, p.PreferredName, p.Role, p.Department)
	}

	return resultWithData(b.String(), matches), nil
}
