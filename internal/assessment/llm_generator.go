package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/llm"
)

// Purpose tags generator calls in the LLM event log.
const Purpose = "assessment"

// GeneratorConfig tunes the LLM request.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   GeneratorConfig
}

func NewLLMGenerator(provider llm.Provider, cfg GeneratorConfig) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

func (g *LLMGenerator) Generate(ctx context.Context, answers Answers, r Reflection) (*PotentialMap, error) {
	if g.provider == nil {
		return nil, llm.ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(answers, r),
		Schema:      PotentialMapSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var m PotentialMap
	if err := json.Unmarshal(resp.Content, &m); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if err := checkMap(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// checkMap guards against providers that do not enforce the schema.
func checkMap(m *PotentialMap) error {
	var problems []string
	if len(m.TopSkills) == 0 {
		problems = append(problems, "no skills")
	}
	for i, s := range m.TopSkills {
		if strings.TrimSpace(s.Skill) == "" {
			problems = append(problems, fmt.Sprintf("skill %d has no name", i+1))
		}
	}
	if strings.TrimSpace(m.PracticalApplication) == "" {
		problems = append(problems, "practicalApplication is empty")
	}
	if !slices.Contains(content.SuggestedTrackIDs(), m.SuggestedTrackID) {
		problems = append(problems, fmt.Sprintf("unknown suggestedTrackId %q", m.SuggestedTrackID))
	}
	if strings.TrimSpace(m.Encouragement) == "" {
		problems = append(problems, "encouragement is empty")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid potential map: %s", strings.Join(problems, "; "))
	}
	return nil
}
