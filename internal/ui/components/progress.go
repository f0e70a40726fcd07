package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/impa-jovem/impa/internal/ui/theme"
)

// ProgressBar is a one-line bar for track completion and quiz position.
type ProgressBar struct {
	Label       string
	Percent     int
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent int, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}
	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("%5d%%", p.Percent)
	}

	bar := max(p.Width-lipgloss.Width(b.String())-len(suffix), 4)
	done := bar * min(max(p.Percent, 0), 100) / 100
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", done)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", bar-done)))
	if suffix != "" {
		b.WriteString(theme.Subtitle.Render(suffix))
	}
	return b.String()
}
