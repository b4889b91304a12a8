package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/modelops"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

// HandleMoveCardMode dispatches key events while relocating a card. Left and
// right carry the card with them; leaving the mode restores newest-first
// ordering in every column.
func HandleMoveCardMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.PrevColumn, "left":
		if err := modelops.MoveCurrentCard(m, -1); err != nil {
			return notifyError(m, err, "Failed to move card")
		}
	case km.NextColumn, "right":
		if err := modelops.MoveCurrentCard(m, 1); err != nil {
			return notifyError(m, err, "Failed to move card")
		}
	case km.MoveCard, "enter", "esc":
		modelops.ResortCards(m)
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}
