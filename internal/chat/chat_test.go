package chat

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"peopled/internal/directory"
	"peopled/internal/history"
	"peopled/internal/intent"
	"peopled/internal/tools"
)

func newService(t *testing.T, classifier intent.Classifier) *Service {
	t.Helper()

	dir, err := directory.New(directory.Config{})
	if err != nil {
		t.Fatalf("directory.New: %v", err)
	}
	store, err := history.New(history.Config{DBPath: filepath.Join(t.TempDir(), "chat.db")})
	if err != nil {
		t.Fatalf("history.New: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(tools.NewRegistry(dir), classifier, store)
}

// fixedClassifier always returns the same intent, or error.
type fixedClassifier struct {
	intent intent.Intent
	err    error
}

func (f fixedClassifier) Classify(ctx context.Context, message string) (intent.Intent, error) {
	return f.intent, f.err
}

func TestProcess_ToolRoundTrip(t *testing.T) {
	svc := newService(t, intent.NewRules())
	session := NewSessionID()

	response, err := svc.Process(context.Background(), session, "find ayush")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(response, "Ayush Sharma") {
		t.Errorf("response = %q, want a fuzzy match for Ayush Sharma", response)
	}

	turns, err := svc.History(session)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(turns) != 1 {
		t.Fatalf("got %d turns, want 1", len(turns))
	}
	if turns[0].Message != "find ayush" || turns[0].Response != response {
		t.Errorf("persisted turn = %+v", turns[0])
	}
}

func TestProcess_ChatReplySkipsDispatch(t *testing.T) {
	svc := newService(t, intent.NewRules())

	response, err := svc.Process(context.Background(), NewSessionID(), "hello")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if response != intent.UsageHint {
		t.Errorf("response = %q, want the usage hint", response)
	}
}

func TestProcess_DispatchErrorBecomesResponse(t *testing.T) {
	tests := []struct {
		name string
		it   intent.Intent
	}{
		{"unknown tool", intent.Intent{ToolName: "no_such_tool", Args: map[string]any{}}},
		{"bad arguments", intent.Intent{ToolName: "get_person_exact", Args: map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, fixedClassifier{intent: tt.it})
			session := NewSessionID()

			response, err := svc.Process(context.Background(), session, "whatever")
			if err != nil {
				t.Fatalf("Process should not fail: %v", err)
			}
			if !strings.HasPrefix(response, "Error: ") {
				t.Errorf("response = %q, want an Error: prefix", response)
			}

			// The failed turn is still part of the transcript.
			turns, err := svc.History(session)
			if err != nil {
				t.Fatalf("History: %v", err)
			}
			if len(turns) != 1 || turns[0].Response != response {
				t.Errorf("turns = %+v", turns)
			}
		})
	}
}

func TestProcess_ClassifierErrorPropagates(t *testing.T) {
	svc := newService(t, fixedClassifier{err: errors.New("boom")})

	if _, err := svc.Process(context.Background(), NewSessionID(), "x"); err == nil {
		t.Fatal("classifier failure should surface as an error")
	}
}

func TestProcess_TranscriptOrderSurvivesMultipleTurns(t *testing.T) {
	svc := newService(t, intent.NewRules())
	session := NewSessionID()

	messages := []string{"ping", "find john", "age above 30", "hello"}
	for _, msg := range messages {
		if _, err := svc.Process(context.Background(), session, msg); err != nil {
			t.Fatalf("Process(%q): %v", msg, err)
		}
	}

	turns, err := svc.History(session)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(turns) != len(messages) {
		t.Fatalf("got %d turns, want %d", len(turns), len(messages))
	}
	for i, msg := range messages {
		if turns[i].Message != msg {
			t.Errorf("turn %d message = %q, want %q", i, turns[i].Message, msg)
		}
	}
}

func TestService_NilStore(t *testing.T) {
	dir, err := directory.New(directory.Config{})
	if err != nil {
		t.Fatalf("directory.New: %v", err)
	}
	svc := New(tools.NewRegistry(dir), intent.NewRules(), nil)

	if _, err := svc.Process(context.Background(), NewSessionID(), "ping"); err != nil {
		t.Fatalf("Process without a store: %v", err)
	}
	turns, err := svc.History("any")
	if err != nil {
		t.Fatalf("History without a store: %v", err)
	}
	if turns == nil || len(turns) != 0 {
		t.Errorf("turns = %v, want empty non-nil slice", turns)
	}
}
