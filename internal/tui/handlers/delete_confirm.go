package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/modelops"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

// HandleDeleteConfirm dispatches key events on the deletion confirmation.
// Left and right toggle between Yes and No; enter applies the choice. Only
// an explicit Yes deletes anything.
func HandleDeleteConfirm(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.PrevColumn, "left", km.NextColumn, "right":
		m.UiState.ToggleConfirm()
	case "esc":
		m.UiState.SetConfirmYes(false)
		m.UiState.SetMode(state.NormalMode)
	case "enter":
		return handleConfirmChoice(m)
	}
	return nil
}

// handleConfirmChoice applies the confirmation choice and returns to the
// board view. The toggle resets to "No" either way.
func handleConfirmChoice(m *tui.Model) tea.Cmd {
	confirmed := m.UiState.ConfirmYes()
	m.UiState.SetConfirmYes(false)
	m.UiState.SetMode(state.NormalMode)
	if !confirmed {
		return nil
	}

	card := modelops.CurrentCard(m)
	if card == nil {
		return nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.Cards.Delete(ctx, card.ID); err != nil {
		return notifyError(m, err, "Failed to delete card")
	}
	modelops.RemoveCurrentCard(m)
	return nil
}
