package render

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/tavla-tui/tavla/internal/config"
	"github.com/tavla-tui/tavla/internal/database"
	"github.com/tavla-tui/tavla/internal/testutil"
	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/components"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

func TestMain(m *testing.M) {
	components.InitStyles(config.DefaultHighlightColor)
	os.Exit(m.Run())
}

func newBoardModel(t *testing.T) *tui.Model {
	t.Helper()
	db := testutil.SetupTestDB(t)
	boardID := testutil.CreateTestBoard(t, db, "work", "Todo", "Doing", "Done")
	testutil.CreateTestCard(t, db, boardID, "Todo", "write the parser", "")

	repo := database.NewRepository(db)
	cfg := &config.Config{
		HighlightColor: config.DefaultHighlightColor,
		KeyMappings:    config.DefaultKeyMappings(),
	}
	m := tui.InitialModel(context.Background(), repo, cfg)
	if m.Board == nil {
		t.Fatalf("Expected the board to load, got notifications: %+v", m.NotificationState.All())
	}
	m.UiState.SetWidth(120)
	m.UiState.SetHeight(40)
	return &m
}

func TestViewWaitsForTerminalSize(t *testing.T) {
	m := newBoardModel(t)
	m.UiState.SetWidth(0)

	view := View(m)
	if view.Content != "Loading..." {
		t.Errorf("View() = %q, want the loading placeholder", view.Content)
	}
}

func TestViewBoardShowsColumnsAndName(t *testing.T) {
	m := newBoardModel(t)

	content := View(m).Content
	for _, want := range []string{"work", "Todo (1)", "Doing (0)", "Done (0)", "write the parser"} {
		if !strings.Contains(content, want) {
			t.Errorf("Board view missing %q", want)
		}
	}
}

func TestViewBoardShowsNotification(t *testing.T) {
	m := newBoardModel(t)
	m.NotificationState.Add(state.LevelError, "could not parse raw card text")

	content := View(m).Content
	if !strings.Contains(content, "could not parse raw card text") {
		t.Error("Board view should include the error banner")
	}
}

func TestViewBoardShowsInfoNotification(t *testing.T) {
	m := newBoardModel(t)
	m.NotificationState.Add(state.LevelInfo, `Created card "write the parser"`)

	content := View(m).Content
	if !strings.Contains(content, `Created card "write the parser"`) {
		t.Error("Board view should include the confirmation banner")
	}
}

func TestViewBoardList(t *testing.T) {
	m := newBoardModel(t)
	m.BoardMetas = nil
	m.Board = nil
	m.UiState.SetMode(state.BoardListMode)

	content := View(m).Content
	if !strings.Contains(content, "No boards yet") {
		t.Errorf("Empty board list = %q, want the placeholder", content)
	}
}

func TestViewDeleteConfirmOverlaysBoard(t *testing.T) {
	m := newBoardModel(t)
	m.UiState.SetMode(state.DeleteConfirmMode)

	content := View(m).Content
	if !strings.Contains(content, "Delete 'write the parser'?") {
		t.Error("Confirmation should name the selected card")
	}
	if !strings.Contains(content, "Yes") || !strings.Contains(content, "No") {
		t.Error("Confirmation should offer Yes and No")
	}
}

func TestViewDeleteConfirmWithoutCardFallsBack(t *testing.T) {
	m := newBoardModel(t)
	m.Board.Columns[0].Cards = nil
	m.UiState.SetSelectedCard(-1)
	m.UiState.SetMode(state.DeleteConfirmMode)

	content := View(m).Content
	if !strings.Contains(content, "work") {
		t.Error("With no card selected the plain board should render")
	}
}
