package modelops

import (
	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/components"
)

// SelectPrevColumn moves the column selection one step left, clamping at the
// first column.
func SelectPrevColumn(m *tui.Model) {
	selectColumn(m, m.UiState.SelectedColumn()-1)
}

// SelectNextColumn moves the column selection one step right, clamping at the
// last column.
func SelectNextColumn(m *tui.Model) {
	selectColumn(m, m.UiState.SelectedColumn()+1)
}

// selectColumn applies the horizontal cursor rules: the target index is
// clamped into range; an empty target clears the card selection; entering a
// non-empty column from an empty one selects its first card; otherwise the
// card index is kept but clamped so the visually closest row stays selected.
func selectColumn(m *tui.Model, target int) {
	if m.Board == nil || len(m.Board.Columns) == 0 {
		return
	}
	if target < 0 {
		target = 0
	}
	if target > len(m.Board.Columns)-1 {
		target = len(m.Board.Columns) - 1
	}

	previous := m.UiState.SelectedCard()
	m.UiState.SetSelectedColumn(target)

	cards := m.Board.Columns[target].Cards
	switch {
	case len(cards) == 0:
		m.UiState.SetSelectedCard(-1)
	case previous < 0:
		m.UiState.SetSelectedCard(0)
	default:
		m.UiState.SetSelectedCard(min(len(cards)-1, previous))
	}
	ensureSelectedCardVisible(m)
}

// SelectPrevCard moves the card selection one step up, saturating at the top.
func SelectPrevCard(m *tui.Model) {
	moveCardSelection(m, -1)
}

// SelectNextCard moves the card selection one step down, saturating at the
// bottom. There is no wraparound at either end.
func SelectNextCard(m *tui.Model) {
	moveCardSelection(m, 1)
}

func moveCardSelection(m *tui.Model, delta int) {
	column := CurrentColumn(m)
	if column == nil || len(column.Cards) == 0 {
		return
	}
	idx := m.UiState.SelectedCard() + delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(column.Cards)-1 {
		idx = len(column.Cards) - 1
	}
	m.UiState.SetSelectedCard(idx)
	ensureSelectedCardVisible(m)
}

// SelectPrevBoard moves the board list selection one step up.
func SelectPrevBoard(m *tui.Model) {
	moveBoardSelection(m, -1)
}

// SelectNextBoard moves the board list selection one step down.
func SelectNextBoard(m *tui.Model) {
	moveBoardSelection(m, 1)
}

func moveBoardSelection(m *tui.Model, delta int) {
	if len(m.BoardMetas) == 0 {
		return
	}
	idx := m.UiState.SelectedBoard() + delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.BoardMetas)-1 {
		idx = len(m.BoardMetas) - 1
	}
	m.UiState.SetSelectedBoard(idx)
}

// ensureSelectedCardVisible scrolls the selected column so the selected card
// stays on screen.
func ensureSelectedCardVisible(m *tui.Model) {
	column := CurrentColumn(m)
	if column == nil {
		return
	}
	visible := components.VisibleCards(m.UiState.ContentHeight())
	m.UiState.EnsureCardVisible(column.ID, m.UiState.SelectedCard(), visible)
}
