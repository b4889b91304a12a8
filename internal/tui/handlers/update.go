// Package handlers contains the update half of the TUI: one dispatcher and
// one handler per interaction mode, all mutating the model through a pointer
// and returning commands for bubbletea to run.
package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates
// the model. This implements the "Update" part of the Model-View-Update
// pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tui.ClearNotificationsMsg:
		// Deferred clears are idempotent, so overlapping timers all
		// converge on the same empty state
		m.NotificationState.Clear()
		return nil

	case tui.EditorFinishedMsg:
		return applyEditorResult(m, msg)

	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return HandleWindowResize(m, msg)
	}

	return nil
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
// Any keypress dismisses whatever banner is showing before it is handled.
func HandleKeyMsg(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	m.NotificationState.Clear()

	switch m.UiState.Mode() {
	case state.BoardListMode:
		return HandleBoardListMode(m, msg)
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.CardDetailMode:
		return HandleCardDetailMode(m, msg)
	case state.MoveCardMode:
		return HandleMoveCardMode(m, msg)
	case state.DeleteConfirmMode:
		return HandleDeleteConfirm(m, msg)
	}
	return nil
}

// HandleWindowResize handles terminal resize events.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)

	// The detail viewport is sized from the terminal, so rebuild it
	if m.UiState.Mode() == state.CardDetailMode {
		refreshDetailViewport(m)
	}
	return nil
}
