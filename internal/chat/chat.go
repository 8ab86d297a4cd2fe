// Package chat runs the conversational round-trip: classify a message,
// dispatch the tool call (or pass a literal reply through), and persist
// the turn.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"

	"peopled/internal/history"
	"peopled/internal/intent"
	"peopled/internal/tools"

	"github.com/google/uuid"
)

// Service ties the intent classifier, the tool registry, and the
// transcript store together. Transports (MCP clients, the CLI REPL)
// only ever see Process and History.
type Service struct {
	registry   *tools.Registry
	classifier intent.Classifier
	store      *history.Store
}

// New creates a chat Service.
func New(registry *tools.Registry, classifier intent.Classifier, store *history.Store) *Service {
	return &Service{registry: registry, classifier: classifier, store: store}
}

// NewSessionID generates a fresh session identifier for callers that
// did not bring their own.
func NewSessionID() string {
	return uuid.NewString()
}

// Process handles one message end to end and returns the response text.
//
// Dispatch failures (unknown tool, bad arguments) become the response
// text rather than an error — the conversation continues. Persistence
// failure is logged and swallowed: the requester already has their
// answer, losing the transcript row must not fail the round-trip.
func (s *Service) Process(ctx context.Context, sessionID, message string) (string, error) {
	it, err := s.classifier.Classify(ctx, message)
	if err != nil {
		return "", fmt.Errorf("chat: classify: %w", err)
	}

	var response string
	if it.IsChat() {
		response = it.Reply
	} else {
		result, err := s.registry.Dispatch(ctx, it.ToolName, it.Args)
		switch {
		case errors.Is(err, tools.ErrUnknownTool), errors.Is(err, tools.ErrInvalidArguments):
			response = fmt.Sprintf("Error: %v", err)
		case err != nil:
			return "", err
		default:
			response = result.Text
		}
	}

	if s.store != nil {
		if _, err := s.store.Append(sessionID, message, response); err != nil {
			log.Printf("WARNING: chat: persist turn for session %s: %v", sessionID, err)
		}
	}

	return response, nil
}

// History returns the persisted transcript for a session, oldest first,
// for replay on reconnect.
func (s *Service) History(sessionID string) ([]history.Turn, error) {
	if s.store == nil {
		return []history.Turn{}, nil
	}
	return s.store.History(sessionID)
}
