package render

import (
	"charm.land/lipgloss/v2"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/state"
	"github.com/tavla-tui/tavla/internal/tui/theme"
)

// notificationLine renders the first pending notification as a compact
// banner, or an empty string when there is none.
func notificationLine(m *tui.Model) string {
	all := m.NotificationState.All()
	if len(all) == 0 {
		return ""
	}
	n := all[0]

	fg, bg := theme.InfoFg, theme.InfoBg
	if n.Level == state.LevelError {
		fg, bg = theme.ErrorFg, theme.ErrorBg
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(n.Message)
}
