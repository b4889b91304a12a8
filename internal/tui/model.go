package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/tavla-tui/tavla/internal/config"
	"github.com/tavla-tui/tavla/internal/database"
	"github.com/tavla-tui/tavla/internal/models"
	"github.com/tavla-tui/tavla/internal/services/board"
	"github.com/tavla-tui/tavla/internal/services/card"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

// dbTimeout bounds every store call made from the update loop.
const dbTimeout = 5 * time.Second

// Model holds all state for the TUI session. Handlers mutate it through a
// pointer; rendering reads it. It is not a tea.Model itself, core.App wraps
// it into one.
type Model struct {
	// Ctx is the session context; handlers derive store contexts from it
	Ctx context.Context

	// Boards and Cards are the service layer the handlers talk to
	Boards board.Service
	Cards  card.Service

	// Config is the resolved configuration, threaded in at construction
	Config *config.Config

	// UiState tracks mode, cursor and terminal dimensions
	UiState *state.UIState

	// NotificationState holds the transient banner stack
	NotificationState *state.NotificationState

	// Editor tracks the in-flight external editor session, if any
	Editor *state.EditorState

	// Board is the loaded board, nil while the board list is shown
	Board *models.Board

	// BoardMetas is the recency-sorted board list, nil while a board is loaded
	BoardMetas []*models.BoardMeta

	// Viewport scrolls the card body in the detail view
	Viewport      viewport.Model
	ViewportReady bool
}

// InitialModel creates the TUI model and decides the starting mode: the most
// recently viewed board when one exists, otherwise the board list.
func InitialModel(ctx context.Context, store database.DataStore, cfg *config.Config) Model {
	m := Model{
		Ctx:               ctx,
		Boards:            board.NewService(store),
		Cards:             card.NewService(store),
		Config:            cfg,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		Editor:            state.NewEditorState(),
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	loaded, err := m.Boards.LoadMostRecent(dbCtx)
	if err != nil {
		slog.Error("Error loading most recent board", "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to load board")
		return m
	}

	if loaded == nil {
		// No boards yet, start on the (empty) board list
		metas, err := m.Boards.Metas(dbCtx)
		if err != nil {
			slog.Error("Error loading board list", "error", err)
			m.NotificationState.Add(state.LevelError, "Failed to load board list")
			return m
		}
		m.BoardMetas = metas
		return m
	}

	m.Board = loaded
	m.UiState.SetMode(state.NormalMode)
	if len(loaded.Columns) > 0 && len(loaded.Columns[0].Cards) > 0 {
		m.UiState.SetSelectedCard(0)
	}
	return m
}

// Init returns the initial command. A startup failure leaves a banner, which
// still needs its deferred clear scheduled.
func (m *Model) Init() tea.Cmd {
	if m.NotificationState.HasAny() {
		return ClearNotificationsAfter()
	}
	return nil
}

// DbContext returns a bounded context for a single store operation.
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, dbTimeout)
}
