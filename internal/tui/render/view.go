// Package render contains the view half of the TUI: one dispatcher and one
// view function per interaction mode, all reading the model without
// mutating it.
package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/state"
	"github.com/tavla-tui/tavla/internal/tui/theme"
)

// View is the main view dispatcher that renders the current state of the
// application. This implements the "View" part of the Model-View-Update
// pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.UiState.Mode() {
	case state.BoardListMode:
		view.Content = ViewBoardList(m)
	case state.CardDetailMode:
		view.Content = ViewCardDetail(m)
	case state.DeleteConfirmMode:
		// The confirmation floats over the board it is deleting from
		layers := []*lipgloss.Layer{
			lipgloss.NewLayer(ViewBoard(m)),
		}
		if modal := DeleteConfirmLayer(m); modal != nil {
			layers = append(layers, modal)
		}
		view.Content = lipgloss.NewCanvas(layers...).Render()
	default:
		view.Content = ViewBoard(m)
	}
	return view
}

// centeredLayer wraps content in a layer positioned at the middle of the
// screen.
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}
