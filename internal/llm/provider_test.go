package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"encouragement":"first"}`), Usage: Usage{InputTokens: 12, OutputTokens: 4}},
		MockResponse{Content: json.RawMessage(`{"encouragement":"second"}`)},
	)
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{System: "mentor", Prompt: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"encouragement":"first"}` || first.Usage.InputTokens != 12 {
		t.Fatalf("first = %+v", first)
	}
	if first.Model != "mock" || first.StopReason != StopEnd {
		t.Fatalf("model/stop = %q/%q", first.Model, first.StopReason)
	}

	second, err := mock.Generate(ctx, Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"encouragement":"second"}` {
		t.Fatalf("second = %s", second.Content)
	}

	_, err = mock.Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("empty queue: expected ErrProviderUnavailable, got %T", err)
	}

	if mock.CallCount() != 3 || mock.Calls[0].System != "mentor" {
		t.Fatalf("calls not recorded: %d", mock.CallCount())
	}
}

func TestMockProvider_DelayHonorsContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`), Delay: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := mock.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "assessment")); p != "assessment" {
		t.Fatalf("expected 'assessment', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	retry := DefaultConfig().Retry

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Provider: "gemini", Retry: retry}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}, Retry: retry}, false},
		{"openai without key", Config{Provider: "openai", Retry: retry}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}, Retry: retry}, false},
		{"openrouter without key", Config{Provider: "openrouter", Retry: retry}, true},
		{"mock needs no key", Config{Provider: "mock", Retry: retry}, false},
		{"zero attempts", Config{Provider: "mock"}, true},
		{"unknown provider", Config{Provider: "watson", Retry: retry}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if got := Discover(DefaultConfig()); got.Enabled() {
		t.Fatalf("expected no provider, got %q", got.Provider)
	}

	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	got := Discover(DefaultConfig())
	if got.Provider != "openai" || got.OpenAI.APIKey != "sk-openai" {
		t.Fatalf("expected openai discovered first, got %q", got.Provider)
	}

	t.Setenv("GEMINI_API_KEY", "gm")
	if got := Discover(DefaultConfig()); got.Provider != "gemini" {
		t.Fatalf("expected gemini to take priority, got %q", got.Provider)
	}

	// An explicit provider keeps its choice and still gets its key.
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	got = Discover(cfg)
	if got.Provider != "anthropic" || got.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("explicit provider: got %q key %q", got.Provider, got.Anthropic.APIKey)
	}

	// Configured keys win over the environment.
	cfg = DefaultConfig()
	cfg.Gemini.APIKey = "from-file"
	if got := Discover(cfg); got.Gemini.APIKey != "from-file" {
		t.Fatalf("configured key overwritten: %q", got.Gemini.APIKey)
	}
}

func TestNewProvider(t *testing.T) {
	if _, err := NewProvider(context.Background(), DefaultConfig(), nil, nil); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}

	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected retry decorator outermost, got %T", p)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q", p.ModelID())
	}

	cfg.Provider = "gemini"
	if _, err := NewProvider(context.Background(), cfg, nil, nil); err == nil {
		t.Fatal("expected error for gemini without key")
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		known bool
	}{
		{"gemini-2.5-flash", true},
		{"claude-haiku-4-5-20251001", true},
		{"gemini-2.5-flash-preview-09-2025", true},
		{"mock", false},
	}
	for _, tt := range tests {
		if got := LookupCost(tt.model); (got != nil) != tt.known {
			t.Errorf("LookupCost(%q) = %v, want known=%v", tt.model, got, tt.known)
		}
	}

	c := LookupCost("gpt-4o-mini")
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("cost = %v, want 0.75", got)
	}
}
