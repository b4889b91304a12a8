package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tavla-tui/tavla/internal/editor"
	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/modelops"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

// HandleBoardListMode dispatches key events on the board picker.
func HandleBoardListMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.PrevCard, "up":
		modelops.SelectPrevBoard(m)
	case km.NextCard, "down":
		modelops.SelectNextBoard(m)
	case km.NewBoard:
		return launchEditor(m, state.EditorNewBoard, editor.NewBoardTemplate)
	case km.EditBoard:
		return handleEditBoard(m)
	case km.OpenBoard:
		return handleOpenBoard(m)
	}
	return nil
}

// handleEditBoard opens the editor seeded with the selected board's name and
// column list. The column snapshot feeds the superset check when the result
// comes back.
func handleEditBoard(m *tui.Model) tea.Cmd {
	meta := modelops.CurrentBoardMeta(m)
	if meta == nil {
		return nil
	}
	m.Editor.BoardID = meta.ID
	m.Editor.BoardColumns = meta.Columns
	return launchEditor(m, state.EditorEditBoard, editor.BoardText(meta.Name, meta.Columns))
}

// handleOpenBoard loads the selected board and switches to it.
func handleOpenBoard(m *tui.Model) tea.Cmd {
	meta := modelops.CurrentBoardMeta(m)
	if meta == nil {
		return nil
	}
	if err := modelops.OpenBoard(m, meta.ID); err != nil {
		return notifyError(m, err, "Failed to open board")
	}
	return nil
}
