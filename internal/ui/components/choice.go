package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/impa-jovem/impa/internal/ui/theme"
)

// Choice is a single-answer selector.
type Choice struct {
	Question  string
	Options   []string
	Selected  int
	Submitted bool
}

// NewChoice creates a selector with the cursor on preselect (or the first
// option when preselect is out of range).
func NewChoice(question string, options []string, preselect int) Choice {
	if preselect < 0 || preselect >= len(options) {
		preselect = 0
	}
	return Choice{
		Question: question,
		Options:  options,
		Selected: preselect,
	}
}

// Update handles keyboard navigation and selection. Number keys jump to
// and submit an option.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(c.Options) {
				c.Selected = i
				c.Submitted = true
			}
		}
	}

	return c, nil
}

// View renders the question and its options.
func (c Choice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(c.Question))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)
		if i == c.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
