package components

import (
	"charm.land/lipgloss/v2"

	"github.com/impa-jovem/impa/internal/ui/theme"
)

// ContentWidth returns the inner width used for cards in a frame of the
// given width.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-4, 20), 76)
}

// Card wraps content in a rounded-border card of width w.
func Card(content string, w int) string {
	return theme.Card.Width(w).Render(content)
}

// TitledCard is Card with a bold title line.
func TitledCard(title, content string, w int) string {
	return Card(theme.Title.Render(title)+"\n"+content, w)
}

// Badge renders a short inline tag.
func Badge(text string, color lipgloss.Style) string {
	return color.Render("[" + text + "]")
}
