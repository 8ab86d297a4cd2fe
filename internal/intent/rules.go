package intent

import (
	"context"
	"regexp"
	"strings"
)

// The numeric comparison patterns. These, together with the keyword
// tables below, are the only classification behavior guaranteed to work
// without a language model, so they are a contract, not a heuristic to
// improve.
var (
	ageAbove    = regexp.MustCompile(`age (?:above|over|greater than) (\d+)`)
	ageBelow    = regexp.MustCompile(`age (?:below|under|less than) (\d+)`)
	salaryAbove = regexp.MustCompile(`salary (?:above|over|greater than) (\d+)`)
	salaryBelow = regexp.MustCompile(`salary (?:below|under|less than) (\d+)`)
)

// namePrefixes introduce an explicit name search.
var namePrefixes = []string{"find", "search", "who is", "show me"}

// smallTalk words disqualify a short message from being treated as a
// bare name search.
var smallTalk = map[string]bool{
	"hello": true, "hi": true, "help": true, "what": true, "how": true,
}

// UsageHint is the reply for messages the rules cannot place.
const UsageHint = "Try: 'find john', 'age above 30', 'salary below 50000', 'engineering managers'"

// Rules is the deterministic keyword/pattern classifier.
type Rules struct{}

// NewRules creates a Rules classifier.
func NewRules() *Rules {
	return &Rules{}
}

// Classify implements Classifier. It never returns an error.
//
// Order matters and mirrors long-standing behavior: ping keyword,
// numeric comparisons, department/role keywords, explicit name-search
// prefixes, then a catch-all name search for short messages. Numeric
// argument values are strings; the registry coerces them.
func (r *Rules) Classify(ctx context.Context, message string) (Intent, error) {
	lower := strings.ToLower(strings.TrimSpace(message))

	if strings.Contains(lower, "ping") {
		return Intent{ToolName: "ping", Args: map[string]any{}}, nil
	}

	filters := map[string]any{}

	if m := ageAbove.FindStringSubmatch(lower); m != nil {
		filters["min_age"] = m[1]
	} else if m := ageBelow.FindStringSubmatch(lower); m != nil {
		filters["max_age"] = m[1]
	}

	if m := salaryAbove.FindStringSubmatch(lower); m != nil {
		filters["min_salary"] = m[1]
	} else if m := salaryBelow.FindStringSubmatch(lower); m != nil {
		filters["max_salary"] = m[1]
	}

	if strings.Contains(lower, "engineering") {
		filters["department"] = "Engineering"
	} else if strings.Contains(lower, "sales") {
		filters["department"] = "Sales"
	} else if strings.Contains(lower, "hr") {
		filters["department"] = "HR"
	}

	if strings.Contains(lower, "manager") {
		filters["role"] = "Manager"
	} else if strings.Contains(lower, "developer") {
		filters["role"] = "Developer"
	}

	if len(filters) > 0 {
		return Intent{ToolName: "list_people", Args: filters}, nil
	}

	for _, prefix := range namePrefixes {
		if strings.Contains(lower, prefix) {
			name := strings.TrimSpace(strings.Replace(lower, prefix, "", 1))
			if name != "" {
				return Intent{ToolName: "get_person_fuzzy", Args: map[string]any{"name": name}}, nil
			}
		}
	}

	words := strings.Fields(lower)
	if len(words) > 0 && len(words) <= 3 && !anySmallTalk(words) {
		return Intent{ToolName: "get_person_fuzzy", Args: map[string]any{"name": lower}}, nil
	}

	return Intent{Reply: UsageHint}, nil
}

func anySmallTalk(words []string) bool {
	for _, w := range words {
		if smallTalk[w] {
			return true
		}
	}
	return false
}
