package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// chatCompleter is the slice of the OpenAI client the classifier uses.
// Narrowed to an interface so tests can stub the remote call.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// LLM classifies messages with a remote chat-completion model. Every
// failure mode returns an error so the Router can fall back to Rules.
type LLM struct {
	client  chatCompleter
	model   string
	timeout time.Duration
}

// NewLLM creates an LLM classifier. Returns nil when no API key is
// configured — a nil primary makes the Router rule-only.
func NewLLM(apiKey, model string, timeout time.Duration) *LLM {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LLM{client: openai.NewClient(apiKey), model: model, timeout: timeout}
}

// classifyPrompt asks the model for one of four line-oriented verdicts.
// The verdict grammar is shared with the rule-based path's output
// shape: both end up as the same Intent.
const classifyPrompt = `You are a helpful assistant that can search for people in a company directory.

Analyze this user message and determine what they want:
Message: %q

Respond with exactly one of these formats:
1. To search for a person: SEARCH_PERSON: [name]
2. To list people by criteria: LIST_PEOPLE: [filters]
3. For general conversation: CHAT: [your response]
4. For system check: PING

IMPORTANT: If the query contains words like 'age', 'salary', 'above', 'below', 'over', 'under' followed by numbers, it's a LIST_PEOPLE query, NOT a person search.

Examples:
- "find john" -> SEARCH_PERSON: john
- "age above 40" -> LIST_PEOPLE: min_age=40
- "age below 30" -> LIST_PEOPLE: max_age=30
- "salary above 50000" -> LIST_PEOPLE: min_salary=50000
- "salary below 100000" -> LIST_PEOPLE: max_salary=100000
- "employees in sales" -> LIST_PEOPLE: department=Sales
- "managers" -> LIST_PEOPLE: role=Manager
- "engineering managers" -> LIST_PEOPLE: department=Engineering,role=Manager
- "high paid employees" -> LIST_PEOPLE: min_salary=80000
- "young employees" -> LIST_PEOPLE: max_age=30
- "senior employees" -> LIST_PEOPLE: min_age=40`

// Classify implements Classifier.
func (l *LLM) Classify(ctx context.Context, message string) (Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(classifyPrompt, message)},
		},
	})
	if err != nil {
		return Intent{}, fmt.Errorf("intent: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Intent{}, fmt.Errorf("intent: empty completion")
	}

	return parseVerdict(strings.TrimSpace(resp.Choices[0].Message.Content))
}

// parseVerdict maps the model's verdict line onto an Intent.
func parseVerdict(verdict string) (Intent, error) {
	switch {
	case strings.HasPrefix(verdict, "SEARCH_PERSON:"):
		name := strings.TrimSpace(strings.TrimPrefix(verdict, "SEARCH_PERSON:"))
		if name == "" {
			return Intent{}, fmt.Errorf("intent: empty search name")
		}
		return Intent{ToolName: "get_person_fuzzy", Args: map[string]any{"name": name}}, nil

	case strings.HasPrefix(verdict, "LIST_PEOPLE:"):
		return Intent{ToolName: "list_people", Args: parseListFilters(verdict)}, nil

	case strings.HasPrefix(verdict, "PING"):
		return Intent{ToolName: "ping", Args: map[string]any{}}, nil

	case strings.HasPrefix(verdict, "CHAT:"):
		return Intent{Reply: strings.TrimSpace(strings.TrimPrefix(verdict, "CHAT:"))}, nil

	default:
		// The model answered in prose; treat it as the chat reply.
		return Intent{Reply: verdict}, nil
	}
}

// listFilterKeys are the comma-separated key=value pairs the verdict
// may carry. Anything else the model invents is dropped rather than
// forwarded — the registry would reject unknown parameters.
var listFilterKeys = map[string]bool{
	"department": true, "role": true, "location": true,
	"min_salary": true, "max_salary": true, "min_age": true, "max_age": true,
	"limit": true,
}

func parseListFilters(verdict string) map[string]any {
	filters := map[string]any{}
	spec := strings.TrimSpace(strings.TrimPrefix(verdict, "LIST_PEOPLE:"))
	for _, pair := range strings.Split(spec, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value == "" || !listFilterKeys[key] {
			continue
		}
		filters[key] = value
	}
	return filters
}
