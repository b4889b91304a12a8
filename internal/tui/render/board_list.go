package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/components"
	"github.com/tavla-tui/tavla/internal/tui/theme"
)

// ViewBoardList renders the board picker: one row per board, most recently
// viewed first, with its column names and last-viewed time.
func ViewBoardList(m *tui.Model) string {
	width := m.UiState.Width()
	header := components.TitleStyle.Render("Boards")

	var body string
	if len(m.BoardMetas) == 0 {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No boards yet. Press " + m.Config.KeyMappings.NewBoard + " to create one.")
	} else {
		rows := make([]string, 0, len(m.BoardMetas))
		for i, meta := range m.BoardMetas {
			rows = append(rows, renderBoardRow(m, i == m.UiState.SelectedBoard(), meta.Name,
				strings.Join(meta.Columns, " | "),
				meta.ViewedAt.Local().Format("2006-01-02 15:04")))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	km := m.Config.KeyMappings
	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Hints: km.PrevCard + "/" + km.NextCard + ": navigate  " +
			km.OpenBoard + ": open  " +
			km.NewBoard + ": new  " +
			km.EditBoard + ": edit  " +
			km.Quit + ": quit",
	})

	sections := []string{header, "", body, ""}
	if banner := notificationLine(m); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderBoardRow(m *tui.Model, selected bool, name, columns, viewedAt string) string {
	nameStyle := lipgloss.NewStyle().Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	rowStyle := lipgloss.NewStyle().Padding(0, 1).Width(max(m.UiState.Width()-2, 20))
	if selected {
		rowStyle = rowStyle.Background(lipgloss.Color(theme.SelectedBg))
		nameStyle = nameStyle.
			Background(lipgloss.Color(theme.SelectedBg)).
			Foreground(lipgloss.Color(theme.Highlight))
		detailStyle = detailStyle.Background(lipgloss.Color(theme.SelectedBg))
	}

	line := fmt.Sprintf("%s  %s",
		nameStyle.Render(name),
		detailStyle.Render(columns+"  viewed "+viewedAt))
	return rowStyle.Render(line)
}
