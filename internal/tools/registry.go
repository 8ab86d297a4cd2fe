package tools

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"peopled/internal/directory"

	"github.com/mark3labs/mcp-go/mcp"
)

// Dispatch failure taxonomy. Both are caller errors, surfaced as text
// to the end user and never fatal to the process.
var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Tool is one named, schema-described operation.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Result is the uniform envelope every transport consumes: a
// human-readable summary plus the full records for programmatic use.
type Result struct {
	Text       string `json:"text"`
	Structured any    `json:"structured,omitempty"`
	IsError    bool   `json:"is_error,omitempty"`
}

// Registry holds the tool catalog and validates calls against each
// tool's schema before routing them.
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

// NewRegistry builds the standard directory tool catalog over the
// given store: ping, get_person_exact, get_person_fuzzy, list_people.
func NewRegistry(store *directory.Store) *Registry {
	r := &Registry{byName: make(map[string]Tool)}
	r.register(NewPingTool())
	r.register(NewExactTool(store))
	r.register(NewFuzzyTool(store))
	r.register(NewListTool(store))
	return r
}

func (r *Registry) register(t Tool) {
	r.tools = append(r.tools, t)
	r.byName[t.Definition().Name] = t
}

// Tools returns the catalog in registration order. This is what an
// external intent classifier consumes to pick a tool.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Definitions returns the schema of every registered tool.
func (r *Registry) Definitions() []mcp.Tool {
	defs := make([]mcp.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.Definition())
	}
	return defs
}

// Dispatch validates a named tool call against its schema and routes it.
//
// Validation happens once, here, at the boundary: unknown tool names,
// unknown argument keys, missing required parameters, and values that
// cannot be coerced to the declared type are all rejected before any
// business logic runs. Handlers therefore trust their arguments.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (Result, error) {
	t, ok := r.byName[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	coerced, err := validateArgs(t.Definition(), args)
	if err != nil {
		return Result{}, err
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = coerced

	res, err := t.Handle(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("tool %s: %w", name, err)
	}
	return Result{
		Text:       resultText(res),
		Structured: res.StructuredContent,
		IsError:    res.IsError,
	}, nil
}

// validateArgs checks args against the tool's input schema and returns
// a copy with values coerced to the declared types.
func validateArgs(def mcp.Tool, args map[string]any) (map[string]any, error) {
	props := def.InputSchema.Properties

	coerced := make(map[string]any, len(args))
	for key, value := range args {
		raw, ok := props[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown parameter %q for tool %s", ErrInvalidArguments, key, def.Name)
		}
		schema, _ := raw.(map[string]any)
		typ, _ := schema["type"].(string)

		v, err := coerceValue(value, typ)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %v", ErrInvalidArguments, key, err)
		}
		coerced[key] = v
	}

	for _, required := range def.InputSchema.Required {
		if _, ok := coerced[required]; !ok {
			return nil, fmt.Errorf("%w: missing required parameter %q for tool %s", ErrInvalidArguments, required, def.Name)
		}
	}

	return coerced, nil
}

// coerceValue converts a raw argument to the schema's declared type.
// Numeric strings are accepted for number parameters because the
// rule-based intent path has always produced them.
func coerceValue(value any, typ string) (any, error) {
	switch typ {
	case "number", "integer":
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case string:
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("%q is not a number", v)
			}
			return n, nil
		default:
			return nil, fmt.Errorf("expected a number, got %T", value)
		}
	case "string":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", value)
		}
		return s, nil
	case "boolean":
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected a boolean, got %T", value)
		}
		return b, nil
	default:
		return value, nil
	}
}

// resultText extracts the text content from a tool result.
func resultText(res *mcp.CallToolResult) string {
	if res == nil {
		return ""
	}
	for _, c := range res.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
