package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tavla-tui/tavla/internal/editor"
	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/modelops"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

// HandleNormalMode dispatches key events while navigating the loaded board.
func HandleNormalMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.PrevColumn, "left":
		modelops.SelectPrevColumn(m)
	case km.NextColumn, "right":
		modelops.SelectNextColumn(m)
	case km.PrevCard, "up":
		modelops.SelectPrevCard(m)
	case km.NextCard, "down":
		modelops.SelectNextCard(m)
	case km.NewCard:
		return handleNewCard(m)
	case km.EditCard:
		return handleEditCard(m)
	case km.DeleteCard:
		return handleDeleteCard(m)
	case km.MoveCard:
		return handleEnterMoveMode(m)
	case km.ViewCard:
		return handleViewCard(m)
	case km.ListBoards:
		return handleListBoards(m)
	}
	return nil
}

// handleNewCard opens the editor with the blank card template. The card is
// only created once the editor result parses.
func handleNewCard(m *tui.Model) tea.Cmd {
	if m.Board == nil {
		return nil
	}
	return launchEditor(m, state.EditorNewCard, editor.NewCardTemplate)
}

// handleEditCard opens the editor seeded with the selected card's text.
// With nothing selected this is a silent no-op.
func handleEditCard(m *tui.Model) tea.Cmd {
	card := modelops.CurrentCard(m)
	if card == nil {
		return nil
	}
	m.Editor.CardID = card.ID
	return launchEditor(m, state.EditorEditCard, editor.CardText(card.Title, card.Body))
}

// handleDeleteCard asks for confirmation before deleting the selected card.
// The confirmation always starts on "No".
func handleDeleteCard(m *tui.Model) tea.Cmd {
	if modelops.CurrentCard(m) == nil {
		return nil
	}
	m.UiState.SetConfirmYes(false)
	m.UiState.SetMode(state.DeleteConfirmMode)
	return nil
}

// handleEnterMoveMode starts relocating the selected card between columns.
func handleEnterMoveMode(m *tui.Model) tea.Cmd {
	if modelops.CurrentCard(m) == nil {
		return nil
	}
	m.UiState.SetMode(state.MoveCardMode)
	return nil
}

// handleViewCard opens the detail view for the selected card.
func handleViewCard(m *tui.Model) tea.Cmd {
	if modelops.CurrentCard(m) == nil {
		return nil
	}
	m.UiState.SetMode(state.CardDetailMode)
	refreshDetailViewport(m)
	return nil
}

// handleListBoards drops back to the board list, reloading the summaries.
func handleListBoards(m *tui.Model) tea.Cmd {
	if err := modelops.SwitchToBoardList(m); err != nil {
		return notifyError(m, err, "Failed to load boards")
	}
	return nil
}
