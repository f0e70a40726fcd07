package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/impa-jovem/impa/internal/store"
)

func openEventRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestWithEvents_RecordsSuccessAndFailure(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 30, OutputTokens: 10}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)
	p := WithEvents(mock, "mock", repo, nil)
	ctx := WithPurpose(context.Background(), "assessment")

	req := Request{
		System: "You are a mentor.",
		Prompt: "answers",
		Schema: &Schema{Name: "potential-map", Definition: map[string]any{"type": "object"}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := p.Generate(ctx, req); err == nil {
		t.Fatal("second call: expected error")
	}

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	failed, succeeded := events[0], events[1]
	if failed.Success || !strings.Contains(failed.ErrorMessage, "rate limited") {
		t.Errorf("failed event = %+v", failed)
	}
	if !succeeded.Success || succeeded.InputTokens != 30 || succeeded.ResponseBody != `{"ok":true}` {
		t.Errorf("succeeded event = %+v", succeeded)
	}
	if succeeded.Provider != "mock" || succeeded.Purpose != "assessment" {
		t.Errorf("provider/purpose = %q/%q", succeeded.Provider, succeeded.Purpose)
	}
	for _, want := range []string{"[system]", "You are a mentor.", "[user]", "[schema: potential-map]"} {
		if !strings.Contains(succeeded.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, succeeded.RequestBody)
		}
	}
}

type failingRepo struct{ store.EventRepo }

func (failingRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return errors.New("disk full")
}

func TestWithEvents_RepoFailureDoesNotFailCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithEvents(mock, "mock", failingRepo{}, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
