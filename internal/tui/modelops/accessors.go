package modelops

import (
	"github.com/tavla-tui/tavla/internal/models"
	"github.com/tavla-tui/tavla/internal/tui"
)

// CurrentColumn returns the currently selected column.
// Returns nil if no board is loaded or the index is out of range.
func CurrentColumn(m *tui.Model) *models.Column {
	if m.Board == nil {
		return nil
	}
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(m.Board.Columns) {
		return nil
	}
	return m.Board.Columns[idx]
}

// CurrentCard returns the currently selected card.
// Returns nil if the selected column is empty or no board is loaded.
func CurrentCard(m *tui.Model) *models.Card {
	column := CurrentColumn(m)
	if column == nil {
		return nil
	}
	idx := m.UiState.SelectedCard()
	if idx < 0 || idx >= len(column.Cards) {
		return nil
	}
	return column.Cards[idx]
}

// CurrentBoardMeta returns the highlighted entry of the board list.
// Returns nil if the list is empty or the index is out of range.
func CurrentBoardMeta(m *tui.Model) *models.BoardMeta {
	idx := m.UiState.SelectedBoard()
	if idx < 0 || idx >= len(m.BoardMetas) {
		return nil
	}
	return m.BoardMetas[idx]
}

// CardByID finds a card anywhere on the loaded board by its database id.
// Returns nil when the card is not on the board.
func CardByID(m *tui.Model, cardID int) *models.Card {
	if m.Board == nil {
		return nil
	}
	for _, column := range m.Board.Columns {
		for _, card := range column.Cards {
			if card.ID == cardID {
				return card
			}
		}
	}
	return nil
}
