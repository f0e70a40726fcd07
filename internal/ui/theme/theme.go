// Package theme holds the IMPA palette and the lipgloss styles built on it.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#A86BF6") // IMPA purple
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F97316")
	Success   = lipgloss.Color("#22C55E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	Border    = lipgloss.Color("#334155")
)

func fg(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

func boxed() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
}

// Text styles.
var (
	Title    = fg(Primary).Bold(true)
	Subtitle = fg(TextDim)
	Body     = fg(Text)
	Hint     = fg(TextDim).Italic(true)
	Label    = fg(Secondary).Bold(true)
)

// Frame styles used by layout and components.
var (
	Card   = boxed()
	Header = boxed()
	Footer = fg(TextDim).Padding(0, 1)
)

// Step and choice states. Completed marks finished steps and tracks,
// Current the next step to do, Locked steps behind it.
var (
	Selected   = fg(Primary).Bold(true)
	Unselected = fg(Text)
	Completed  = fg(Success)
	Current    = fg(Accent).Bold(true)
	Locked     = fg(TextDim)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
