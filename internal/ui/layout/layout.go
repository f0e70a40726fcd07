package layout

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/impa-jovem/impa/internal/ui/theme"
)

const (
	// DefaultWidth is used before the terminal reports its size.
	DefaultWidth = 72
	MaxWidth     = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// ClampWidth keeps rendered content readable on very wide terminals.
func ClampWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	return min(width, MaxWidth)
}

// RenderHeader renders the header bar: app name on the left, title on
// the right.
func RenderHeader(title string, width int) string {
	left := theme.Title.Render("IMPA")
	right := theme.Body.Render(title)

	innerWidth := width - 4 // border + padding
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return theme.Header.
		Width(width).
		Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}
	return theme.Footer.Render(strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer.
func RenderFrame(header, content, footer string) string {
	return lipgloss.JoinVertical(lipgloss.Left, header, "", content, "", footer)
}
