package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures the status line at the bottom of the screen
type StatusBarProps struct {
	Width int
	Left  string
	Hints string
}

// RenderStatusBar renders a status line with context on the left and key
// hints on the right
func RenderStatusBar(props StatusBarProps) string {
	left := StatusBarStyle.Render(props.Left)
	right := StatusBarStyle.Render(props.Hints)

	gapWidth := props.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gapWidth < 1 {
		gapWidth = 1
	}
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
