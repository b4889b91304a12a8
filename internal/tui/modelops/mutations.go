package modelops

import (
	"fmt"
	"sort"
	"time"

	"github.com/tavla-tui/tavla/internal/models"
	"github.com/tavla-tui/tavla/internal/tui"
)

// MoveCurrentCard relocates the selected card one column left or right.
// The new column is persisted first; only then is the in-memory board
// mutated, so a store failure leaves the board exactly as displayed.
// Moving past the first or last column is a no-op with no store call.
func MoveCurrentCard(m *tui.Model, delta int) error {
	card := CurrentCard(m)
	if card == nil {
		return nil
	}

	src := m.UiState.SelectedColumn()
	dst := src + delta
	if dst < 0 || dst >= len(m.Board.Columns) {
		return nil
	}
	srcColumn := m.Board.Columns[src]
	dstColumn := m.Board.Columns[dst]

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.Cards.Move(ctx, m.Board.ID, card.ID, dstColumn.Name); err != nil {
		return fmt.Errorf("failed to move card #%d to %q: %w", card.ExternalID, dstColumn.Name, err)
	}

	idx := m.UiState.SelectedCard()
	srcColumn.Cards = append(srcColumn.Cards[:idx], srcColumn.Cards[idx+1:]...)
	dstColumn.Cards = append([]*models.Card{card}, dstColumn.Cards...)

	// The moved card is the most salient item, so it leads its new column
	m.UiState.SetSelectedColumn(dst)
	m.UiState.SetSelectedCard(0)
	ensureSelectedCardVisible(m)
	return nil
}

// RemoveCurrentCard drops the selected card from the in-memory board after a
// successful delete. The cursor never points past the end: removing the last
// element selects the new last one, and an emptied column clears the
// selection entirely.
func RemoveCurrentCard(m *tui.Model) {
	column := CurrentColumn(m)
	if column == nil {
		return
	}
	idx := m.UiState.SelectedCard()
	if idx < 0 || idx >= len(column.Cards) {
		return
	}

	column.Cards = append(column.Cards[:idx], column.Cards[idx+1:]...)

	if len(column.Cards) == 0 {
		m.UiState.SetSelectedCard(-1)
	} else if idx >= len(column.Cards) {
		m.UiState.SetSelectedCard(len(column.Cards) - 1)
	}
	ensureSelectedCardVisible(m)
}

// PrependNewCard places a freshly inserted card at the front of the first
// column and selects it, matching where the store put it.
func PrependNewCard(m *tui.Model, card *models.Card) {
	if m.Board == nil || len(m.Board.Columns) == 0 {
		return
	}
	first := m.Board.Columns[0]
	first.Cards = append([]*models.Card{card}, first.Cards...)

	m.UiState.SetSelectedColumn(0)
	m.UiState.SetSelectedCard(0)
	m.UiState.SetCardScrollOffset(first.ID, 0)
}

// ApplyCardEdit rewrites a card's fields in memory after a persisted update.
func ApplyCardEdit(m *tui.Model, cardID int, title, body string, updatedAt time.Time) {
	card := CardByID(m, cardID)
	if card == nil {
		return
	}
	card.Title = title
	card.Body = body
	card.UpdatedAt = updatedAt
}

// ResortCards restores newest-first ordering in every column. Relocating a
// card parks it at the front of its column regardless of age, so leaving
// move mode re-sorts the whole board.
func ResortCards(m *tui.Model) {
	if m.Board == nil {
		return
	}
	for _, column := range m.Board.Columns {
		sort.Slice(column.Cards, func(i, j int) bool {
			return column.Cards[i].ID > column.Cards[j].ID
		})
	}
}
