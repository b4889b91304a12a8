package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/tavla-tui/tavla/internal/models"
	"github.com/tavla-tui/tavla/internal/tui/theme"
)

// RenderCard renders a single card at the given total width
//
//	┏━━━━━━━━━━━━━━━━┓
//	┃ {Title}        ┃
//	┃ #{id}          ┃
//	┗━━━━━━━━━━━━━━━━┛
//
// The height is fixed at CardHeight; long titles are truncated.
func RenderCard(card *models.Card, width int, selected bool) string {
	bg := theme.CardBg
	if selected {
		bg = theme.SelectedBg
	}

	title := renderCardTitle(card, width, bg)
	idLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(fmt.Sprintf(" #%d", card.ExternalID))

	style := CardStyle.
		Width(width - 2).
		Background(lipgloss.Color(bg)).
		BorderBackground(lipgloss.Color(bg))
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.Highlight))
	}

	return style.Render(title + "\n" + idLine)
}

func renderCardTitle(card *models.Card, width int, bg string) string {
	// Room inside the borders, minus the leading space and ellipsis
	maxLength := width - 6
	if maxLength < 1 {
		maxLength = 1
	}

	title := card.Title
	if runes := []rune(title); len(runes) > maxLength {
		ellipsis := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true).
			Render("...")
		title = string(runes[:maxLength]) + ellipsis
	}

	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + title)
}
