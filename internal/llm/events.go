package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/impa-jovem/impa/internal/logging"
	"github.com/impa-jovem/impa/internal/store"
)

// EventProvider is a decorator that records every LLM request in the
// event repository.
type EventProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	log      *logging.Logger
}

// WithEvents wraps a Provider so each call is stored as an LLM request
// event under the given provider name. Failing to store an event is
// logged and never fails the call.
func WithEvents(p Provider, provider string, repo store.EventRepo, log *logging.Logger) Provider {
	if log == nil {
		log = logging.Nop()
	}
	return &EventProvider{inner: p, provider: provider, events: repo, log: log}
}

func (e *EventProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := e.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    e.provider,
		Model:       e.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// The caller's context may already be past its deadline; the event
	// is still worth keeping.
	if logErr := e.events.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		e.log.Warn("failed to record LLM request event", "error", logErr)
	}

	return resp, err
}

func (e *EventProvider) ModelID() string {
	return e.inner.ModelID()
}

// serializeRequest builds a readable transcript of the request for
// `impa llm view`.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n\n", req.Prompt)
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
