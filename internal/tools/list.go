package tools

import (
	"context"
	"fmt"
	"strings"

	"peopled/internal/directory"
	"peopled/internal/filterx"

	"github.com/mark3labs/mcp-go/mcp"
)

// Default result caps for the two listing modes. The extended path has
// always returned fewer rows by default because its records are wider.
const (
	defaultDirectoryLimit = 20
	defaultExtendedLimit  = 10
)

// ListTool handles the list_people tool.
type ListTool struct {
	store *directory.Store
}

// NewListTool creates a ListTool.
func NewListTool(store *directory.Store) *ListTool {
	return &ListTool{store: store}
}

// Definition returns the MCP tool definition for list_people.
func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("list_people",
		mcp.WithDescription("List people filtered by department, role, location, salary, and/or age"),
		mcp.WithString("department",
			mcp.Description("Filter by department"),
		),
		mcp.WithString("role",
			mcp.Description("Filter by role"),
		),
		mcp.WithString("location",
			mcp.Description("Filter by location"),
		),
		mcp.WithNumber("min_salary",
			mcp.Description("Minimum salary (inclusive)"),
		),
		mcp.WithNumber("max_salary",
			mcp.Description("Maximum salary (inclusive)"),
		),
		mcp.WithNumber("min_age",
			mcp.Description("Minimum age (inclusive)"),
		),
		mcp.WithNumber("max_age",
			mcp.Description("Maximum age (inclusive)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 20, or 10 with numeric filters)"),
		),
	)
}

// Handle processes the list_people tool call.
//
// Supplying any numeric bound selects the extended listing mode
// (substring department/role matching, salary sort); otherwise the
// directory mode applies (exact equality, roster order). The two modes
// are deliberately distinct — see filterx.
func (t *ListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c := filterx.Criteria{
		Department: req.GetString("department", ""),
		Role:       req.GetString("role", ""),
		Location:   req.GetString("location", ""),
		MinSalary:  optionalInt(req, "min_salary"),
		MaxSalary:  optionalInt(req, "max_salary"),
		MinAge:     optionalInt(req, "min_age"),
		MaxAge:     optionalInt(req, "max_age"),
	}
	extended := c.MinSalary != nil || c.MaxSalary != nil || c.MinAge != nil || c.MaxAge != nil

	var people []directory.Person
	if extended {
		limit := intArg(req, "limit", defaultExtendedLimit)
		people = filterx.ListExtended(t.store.Snapshot(), c, limit)
	} else {
		limit := intArg(req, "limit", defaultDirectoryLimit)
		people = filterx.ListDirectory(t.store.Snapshot(), c, limit)
	}

	if len(people) == 0 {
		return mcp.NewToolResultText("No people found matching the criteria"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d people%s:\n", len(people), describeFilters(c))
	for _, p := range people {
		if extended && p.HasSalary {
			fmt.Fprintf(&b, "- %s - %s in %s (age %d, salary $%d)\n",
				p.FullName, p.Role, p.Department, p.Age, p.Salary)
		} else {
			fmt.Fprintf(&b, "- %s - %s in %s (%s)\n",
				p.FullName, p.Role, p.Department, p.Location)
		}
	}

	return resultWithData(b.String(), people), nil
}

// describeFilters renders the applied criteria for the summary line.
func describeFilters(c filterx.Criteria) string {
	var used []string
	if c.Department != "" {
		used = append(used, fmt.Sprintf("department='%s'", c.Department))
	}
	if c.Role != "" {
		used = append(used, fmt.Sprintf("role='%s'", c.Role))
	}
	if c.Location != "" {
		used = append(used, fmt.Sprintf("location='%s'", c.Location))
	}
	if c.MinSalary != nil {
		used = append(used, fmt.Sprintf("salary >= $%d", *c.MinSalary))
	}
	if c.MaxSalary != nil {
		used = append(used, fmt.Sprintf("salary <= $%d", *c.MaxSalary))
	}
	if c.MinAge != nil {
		used = append(used, fmt.Sprintf("age >= %d", *c.MinAge))
	}
	if c.MaxAge != nil {
		used = append(used, fmt.Sprintf("age <= %d", *c.MaxAge))
	}
	if len(used) == 0 {
		return ""
	}
	return " with filters: " + strings.Join(used, ", ")
}
