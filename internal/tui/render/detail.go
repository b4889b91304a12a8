package render

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/components"
	"github.com/tavla-tui/tavla/internal/tui/modelops"
	"github.com/tavla-tui/tavla/internal/tui/theme"
)

// ViewCardDetail renders the full card: title, its board-scoped number, and
// the markdown body inside a scrollable viewport.
func ViewCardDetail(m *tui.Model) string {
	card := modelops.CurrentCard(m)
	if card == nil {
		return ViewBoard(m)
	}

	width := m.UiState.Width()
	header := components.TitleStyle.Render(card.Title) + "  " +
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render(fmt.Sprintf("#%d", card.ExternalID))

	km := m.Config.KeyMappings
	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Hints: km.EditCard + ": edit  esc: back  " + km.Quit + ": quit",
	})

	sections := []string{header, "", m.Viewport.View(), ""}
	if banner := notificationLine(m); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
