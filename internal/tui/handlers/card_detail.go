package handlers

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/tavla-tui/tavla/internal/editor"
	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/components"
	"github.com/tavla-tui/tavla/internal/tui/modelops"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

// HandleCardDetailMode dispatches key events in the card detail view.
// Unrecognized keys go to the viewport so its scroll bindings keep working.
func HandleCardDetailMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case "enter", "esc":
		m.UiState.SetMode(state.NormalMode)
		return nil
	case km.EditCard:
		card := modelops.CurrentCard(m)
		if card == nil {
			return nil
		}
		m.Editor.CardID = card.ID
		return launchEditor(m, state.EditorEditCard, editor.CardText(card.Title, card.Body))
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return cmd
}

// refreshDetailViewport sizes the detail viewport to the terminal and fills
// it with the selected card's rendered body.
func refreshDetailViewport(m *tui.Model) {
	card := modelops.CurrentCard(m)
	if card == nil {
		return
	}

	width := max(m.UiState.Width()-6, 20)
	height := max(m.UiState.Height()-7, 5)

	if !m.ViewportReady {
		m.Viewport = viewport.New()
		m.ViewportReady = true
	}
	m.Viewport.SetWidth(width)
	m.Viewport.SetHeight(height)
	m.Viewport.SetContent(components.RenderBody(card.Body, width))
	m.Viewport.GotoTop()
}
