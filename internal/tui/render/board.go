package render

import (
	"charm.land/lipgloss/v2"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/components"
	"github.com/tavla-tui/tavla/internal/tui/state"
	"github.com/tavla-tui/tavla/internal/tui/theme"
)

// ViewBoard renders the loaded board: its name, the columns side by side,
// and the status line.
func ViewBoard(m *tui.Model) string {
	if m.Board == nil {
		return "No board loaded"
	}

	width := m.UiState.Width()
	header := components.TitleStyle.Render(m.Board.Name)

	var body string
	if len(m.Board.Columns) == 0 {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render("Board has no columns")
	} else {
		columnWidth := max(width/len(m.Board.Columns), components.MinColumnWidth)
		columnHeight := m.UiState.ContentHeight()

		columns := make([]string, 0, len(m.Board.Columns))
		for i, column := range m.Board.Columns {
			selected := i == m.UiState.SelectedColumn()
			selectedCard := -1
			if selected {
				selectedCard = m.UiState.SelectedCard()
			}
			scrollOffset := m.UiState.CardScrollOffset(column.ID)
			columns = append(columns, components.RenderColumn(
				column, columnWidth, columnHeight, selected, selectedCard, scrollOffset,
			))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	}

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Left:  boardStatusLeft(m),
		Hints: boardStatusHints(m),
	})

	sections := []string{header, "", body, ""}
	if banner := notificationLine(m); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func boardStatusLeft(m *tui.Model) string {
	if m.UiState.Mode() == state.MoveCardMode {
		return "moving card"
	}
	return ""
}

func boardStatusHints(m *tui.Model) string {
	km := m.Config.KeyMappings
	if m.UiState.Mode() == state.MoveCardMode {
		return km.PrevColumn + "/" + km.NextColumn + ": move  " + km.MoveCard + "/esc: done"
	}
	return km.PrevColumn + "/" + km.NextColumn + "/" + km.PrevCard + "/" + km.NextCard + ": navigate  " +
		km.NewCard + ": new  " +
		km.EditCard + ": edit  " +
		km.MoveCard + ": move  " +
		km.DeleteCard + ": delete  " +
		km.ViewCard + ": view  " +
		km.ListBoards + ": boards  " +
		km.Quit + ": quit"
}
