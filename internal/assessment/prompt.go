package assessment

import (
	"fmt"
	"strings"

	"github.com/impa-jovem/impa/internal/content"
)

const systemPrompt = `You are a practical, approachable mentor for young people aged 15 to 19.

Rules:
- Read the quiz answers and the personal reflection, then identify the person's 3 strongest skills.
- Explain each skill in one plain sentence. No jargon, no corporate language.
- Suggest one concrete way to use these skills today, with what the person already has.
- Recommend exactly one track from the list below.
- Close with a short, honest encouragement. Talk like a young mentor, not like a teacher.`

// buildUserMessage lists answers in question order, using option labels
// so the model sees what the person actually picked.
func buildUserMessage(answers Answers, r Reflection) string {
	var b strings.Builder

	b.WriteString("Quiz answers:\n")
	for _, q := range content.QuizQuestions() {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		label := value
		if o, ok := q.Option(value); ok {
			label = o.Label
		}
		fmt.Fprintf(&b, "%d. %s\n   -> %s (%s)\n", q.ID, q.Text, label, value)
	}

	b.WriteString("\nReflection:\n")
	fmt.Fprintf(&b, "- What I like doing: %s\n", orNone(r.Likes))
	fmt.Fprintf(&b, "- What I am good at: %s\n", orNone(r.GoodAt))
	fmt.Fprintf(&b, "- What I want to develop: %s\n", orNone(r.Develop))

	b.WriteString("\nTracks (use the id for suggestedTrackId):\n")
	for _, id := range content.SuggestedTrackIDs() {
		fmt.Fprintf(&b, "- %s: %s\n", id, content.SuggestedTrackLabel(id))
	}

	return strings.TrimRight(b.String(), "\n")
}

func orNone(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "(not answered)"
	}
	return s
}
