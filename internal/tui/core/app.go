// Package core wraps the TUI model into a tea.Model, wiring the handlers
// and render packages into the Bubble Tea lifecycle.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/tavla-tui/tavla/internal/config"
	"github.com/tavla-tui/tavla/internal/database"
	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/handlers"
	"github.com/tavla-tui/tavla/internal/tui/render"
)

// App is the tea.Model handed to the Bubble Tea program. It delegates
// updates to the handlers package and views to the render package, both
// operating on the shared Model.
type App struct {
	model *tui.Model
}

// New creates the App and its underlying model.
func New(ctx context.Context, store database.DataStore, cfg *config.Config) *App {
	model := tui.InitialModel(ctx, store, cfg)
	return &App{model: &model}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

// View implements tea.Model.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// Model exposes the underlying model for tests.
func (a *App) Model() *tui.Model {
	return a.model
}
