package modelops

import (
	"fmt"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

// SwitchToBoardList fetches fresh board summaries and enters the board list.
// The open board is released so a later open reloads it from the store.
func SwitchToBoardList(m *tui.Model) error {
	ctx, cancel := m.DbContext()
	defer cancel()
	metas, err := m.Boards.Metas(ctx)
	if err != nil {
		return fmt.Errorf("failed to load boards: %w", err)
	}

	m.BoardMetas = metas
	m.Board = nil
	m.UiState.SetSelectedBoard(0)
	m.UiState.SetMode(state.BoardListMode)
	return nil
}

// RefreshBoardMetas re-reads the summaries while already in the board list,
// after a board was created or renamed underneath it. The selection is kept
// where it was, clamped into the new range.
func RefreshBoardMetas(m *tui.Model) error {
	ctx, cancel := m.DbContext()
	defer cancel()
	metas, err := m.Boards.Metas(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload boards: %w", err)
	}

	m.BoardMetas = metas
	if m.UiState.SelectedBoard() >= len(metas) {
		m.UiState.SetSelectedBoard(max(len(metas)-1, 0))
	}
	return nil
}

// OpenBoard loads a board by id, makes it current, and returns to the normal
// board view with the cursor on the first card of the first column.
func OpenBoard(m *tui.Model, boardID int) error {
	ctx, cancel := m.DbContext()
	defer cancel()
	board, err := m.Boards.Load(ctx, boardID)
	if err != nil {
		return fmt.Errorf("failed to open board #%d: %w", boardID, err)
	}

	m.Board = board
	m.BoardMetas = nil
	m.UiState.ResetSelection()
	if len(board.Columns) > 0 && len(board.Columns[0].Cards) > 0 {
		m.UiState.SetSelectedCard(0)
	}
	m.UiState.SetMode(state.NormalMode)
	return nil
}
