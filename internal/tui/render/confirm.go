package render

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/components"
	"github.com/tavla-tui/tavla/internal/tui/modelops"
	"github.com/tavla-tui/tavla/internal/tui/theme"
)

// DeleteConfirmLayer renders the deletion confirmation dialog as a centered
// layer over the board. Returns nil when no card is selected.
func DeleteConfirmLayer(m *tui.Model) *lipgloss.Layer {
	card := modelops.CurrentCard(m)
	if card == nil {
		return nil
	}

	question := fmt.Sprintf("Delete '%s'?", card.Title)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		confirmButton("Yes", m.UiState.ConfirmYes()),
		"   ",
		confirmButton("No", !m.UiState.ConfirmYes()),
	)

	box := components.DeleteConfirmBoxStyle.
		Width(max(lipgloss.Width(question)+4, 30)).
		Render(lipgloss.JoinVertical(lipgloss.Center, question, "", buttons))

	return centeredLayer(box, m.UiState.Width(), m.UiState.Height())
}

func confirmButton(label string, active bool) string {
	style := lipgloss.NewStyle().Padding(0, 2)
	if active {
		style = style.
			Background(lipgloss.Color(theme.Highlight)).
			Foreground(lipgloss.Color(theme.Background)).
			Bold(true)
	} else {
		style = style.Foreground(lipgloss.Color(theme.Subtle))
	}
	return style.Render(label)
}
