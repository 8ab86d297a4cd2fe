// Package intent maps free-text chat messages onto tool calls.
//
// Classification is a pluggable strategy: a remote language-model
// classifier when an API key is configured, and a deterministic
// rule-based classifier otherwise — and as the fallback for every
// remote failure. The two produce the same Intent shape, so nothing
// downstream knows or cares which one answered.
package intent

import "context"

// Intent is the outcome of classifying one message: either a tool call
// (ToolName + Args) or a literal chat reply (Reply, with empty ToolName).
type Intent struct {
	ToolName string
	Args     map[string]any
	Reply    string
}

// IsChat reports whether the intent bypasses tool dispatch entirely.
func (i Intent) IsChat() bool {
	return i.ToolName == ""
}

// Classifier turns a free-text message into an Intent. Arguments it
// produces must already be coercible by the tool registry's schema —
// the registry, not the classifier, owns validation.
type Classifier interface {
	Classify(ctx context.Context, message string) (Intent, error)
}

// Router selects between a primary classifier and the rule-based
// fallback. Any primary error — remote failure, timeout, cancellation,
// unparseable output — falls through to the fallback, so classification
// never fails the round-trip.
type Router struct {
	primary  Classifier
	fallback Classifier
}

// NewRouter builds a Router. primary may be nil, in which case every
// message goes straight to the fallback.
func NewRouter(primary, fallback Classifier) *Router {
	return &Router{primary: primary, fallback: fallback}
}

// Classify implements Classifier.
func (r *Router) Classify(ctx context.Context, message string) (Intent, error) {
	if r.primary != nil {
		if intent, err := r.primary.Classify(ctx, message); err == nil {
			return intent, nil
		}
	}
	return r.fallback.Classify(ctx, message)
}
