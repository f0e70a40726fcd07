package assessment

import (
	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/llm"
)

// PotentialMapSchema is the structured-output contract of the generator.
var PotentialMapSchema = &llm.Schema{
	Name:        "potential-map",
	Description: "A young person's top skills, how to use them now, a suggested track and a short encouragement",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topSkills": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    5,
				"description": "The person's top 3 skills, strongest first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill": map[string]any{
							"type":        "string",
							"description": "Short skill name, one or two words",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One sentence describing the skill in plain words",
						},
					},
					"required":             []any{"skill", "description"},
					"additionalProperties": false,
				},
			},
			"practicalApplication": map[string]any{
				"type":        "string",
				"description": "How to apply these skills today, in one or two sentences",
			},
			"suggestedTrackId": map[string]any{
				"type":        "string",
				"enum":        suggestedTrackEnum(),
				"description": "The recommended track",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "A short encouraging message",
			},
		},
		"required":             []any{"topSkills", "practicalApplication", "suggestedTrackId", "encouragement"},
		"additionalProperties": false,
	},
}

func suggestedTrackEnum() []any {
	ids := content.SuggestedTrackIDs()
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
