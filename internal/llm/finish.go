package llm

import (
	"encoding/json"
	"strings"
)

// reply is a vendor answer before validation.
type reply struct {
	text  string
	model string
	stop  StopReason
	usage Usage
}

// finish turns a vendor reply into a Response, validating structured
// output. fallbackModel is used when the vendor does not echo the model.
func finish(req Request, r *reply, fallbackModel string) (*Response, error) {
	content := json.RawMessage(r.text)
	if req.Schema != nil {
		content = json.RawMessage(stripCodeFence(r.text))
	}
	if err := checkContent(req.Schema, content, r.stop); err != nil {
		return nil, err
	}

	model := r.model
	if model == "" {
		model = fallbackModel
	}
	return &Response{
		Content:    content,
		Usage:      r.usage,
		Model:      model,
		StopReason: r.stop,
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence, which some
// models add around JSON even in structured mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// resolveModel maps a friendly model name to a vendor model id. Unknown
// names are used as-is.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
