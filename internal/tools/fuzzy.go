package tools

import (
	"context"
	"fmt"
	"strings"

	"peopled/internal/directory"
	"peopled/internal/match"

	"github.com/mark3labs/mcp-go/mcp"
)

// FuzzyTool handles the get_person_fuzzy tool.
type FuzzyTool struct {
	store *directory.Store
}

// NewFuzzyTool creates a FuzzyTool.
func NewFuzzyTool(store *directory.Store) *FuzzyTool {
	return &FuzzyTool{store: store}
}

// Definition returns the MCP tool definition for get_person_fuzzy.
func (t *FuzzyTool) Definition() mcp.Tool {
	return mcp.NewTool("get_person_fuzzy",
		mcp.WithDescription("Find people with fuzzy/typo-tolerant name search"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name to search for (may contain typos)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return (default: 3)"),
		),
	)
}

// Handle processes the get_person_fuzzy tool call.
func (t *FuzzyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}
	maxResults := intArg(req, "maxResults", 3)

	result := match.Match(t.store.Snapshot(), name, maxResults)

	if len(result.Candidates) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No close matches found for: %s", name)), nil
	}

	best := result.Candidates[0]
	var b strings.Builder
	fmt.Fprintf(&b, "Fuzzy search for '%s':\n", name)
	fmt.Fprintf(&b, "Best match: %s (similarity: %.2f)\n\n", best.MatchedName, best.Similarity)

	// The substring matcher only ever scores 1.0, but the confidence
	// bands are part of the historical output contract.
	if best.Similarity > 0.85 {
		b.WriteString("High confidence match - likely the intended person.\n\n")
	} else if best.Similarity < 0.6 {
		b.WriteString("Low confidence - no close match found.\n\n")
	}

	b.WriteString("All candidates:\n")
	for _, c := range result.Candidates {
		fmt.Fprintf(&b, "- %s (similarity: %.2f) - %s in %s\n",
			c.MatchedName, c.Similarity, c.Person.Role, c.Person.Department)
	}

	return resultWithData(b.String(), result), nil
}
