package handlers

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/tavla-tui/tavla/internal/editor"
	boardservice "github.com/tavla-tui/tavla/internal/services/board"
	"github.com/tavla-tui/tavla/internal/tui"
	"github.com/tavla-tui/tavla/internal/tui/modelops"
	"github.com/tavla-tui/tavla/internal/tui/state"
)

// editorCommand resolves the user's editor: $VISUAL, then $EDITOR, then vi.
// The value may carry arguments ("code --wait").
func editorCommand() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			if args := strings.Fields(v); len(args) > 0 {
				return args
			}
		}
	}
	return []string{"vi"}
}

// launchEditor writes the template to a temp file and suspends the TUI into
// the user's editor. The purpose-specific fields of m.Editor (card id, board
// snapshot) must be set by the caller before this runs.
func launchEditor(m *tui.Model, purpose state.EditorPurpose, template string) tea.Cmd {
	f, err := os.CreateTemp("", "tavla-*.md")
	if err != nil {
		return notifyError(m, err, "Failed to create editor file")
	}
	path := f.Name()

	if _, err := f.WriteString(template); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return notifyError(m, err, "Failed to write editor file")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return notifyError(m, err, "Failed to write editor file")
	}

	m.Editor.Active = true
	m.Editor.Purpose = purpose
	m.Editor.Path = path

	args := editorCommand()
	cmd := exec.Command(args[0], append(args[1:], path)...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return tui.EditorFinishedMsg{Err: err}
	})
}

// applyEditorResult consumes a finished editor session: read the temp file,
// parse it, and apply the purpose-specific mutation. Any failure surfaces as
// a banner and leaves the board untouched.
func applyEditorResult(m *tui.Model, msg tui.EditorFinishedMsg) tea.Cmd {
	session := *m.Editor
	m.Editor.Reset()
	if !session.Active {
		return nil
	}
	defer func() { _ = os.Remove(session.Path) }()

	if msg.Err != nil {
		return notifyError(m, msg.Err, "Editor failed")
	}

	raw, err := os.ReadFile(session.Path)
	if err != nil {
		return notifyError(m, err, "Failed to read editor result")
	}

	switch session.Purpose {
	case state.EditorNewCard:
		return applyNewCard(m, string(raw))
	case state.EditorEditCard:
		return applyCardEdit(m, session.CardID, string(raw))
	case state.EditorNewBoard:
		return applyNewBoard(m, string(raw))
	case state.EditorEditBoard:
		return applyBoardEdit(m, session, string(raw))
	}
	return nil
}

func applyNewCard(m *tui.Model, raw string) tea.Cmd {
	if m.Board == nil {
		return nil
	}
	title, body, err := editor.ParseCard(raw)
	if err != nil {
		return notifyError(m, err, "Failed to parse card")
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	card, err := m.Cards.Create(ctx, m.Board.ID, title, body)
	if err != nil {
		return notifyError(m, err, "Failed to create card")
	}

	modelops.PrependNewCard(m, card)
	return notifyInfo(m, fmt.Sprintf("Created card %q", card.Title))
}

func applyCardEdit(m *tui.Model, cardID int, raw string) tea.Cmd {
	title, body, err := editor.ParseCard(raw)
	if err != nil {
		return notifyError(m, err, "Failed to parse card")
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	updatedAt, err := m.Cards.Update(ctx, cardID, title, body)
	if err != nil {
		return notifyError(m, err, "Failed to update card")
	}

	modelops.ApplyCardEdit(m, cardID, title, body, updatedAt)
	if m.UiState.Mode() == state.CardDetailMode {
		refreshDetailViewport(m)
	}
	return nil
}

func applyNewBoard(m *tui.Model, raw string) tea.Cmd {
	name, columns, err := editor.ParseBoard(raw)
	if err != nil {
		return notifyError(m, err, "Failed to parse board")
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if _, err := m.Boards.Create(ctx, boardservice.CreateBoardRequest{
		Name:    name,
		Columns: columns,
	}); err != nil {
		return notifyError(m, err, fmt.Sprintf("Failed to create board %q", name))
	}

	if err := modelops.RefreshBoardMetas(m); err != nil {
		return notifyError(m, err, "Failed to reload boards")
	}
	// The new board sorts first: creation stamps its viewed_at
	m.UiState.SetSelectedBoard(0)
	return notifyInfo(m, fmt.Sprintf("Created board %q", name))
}

func applyBoardEdit(m *tui.Model, session state.EditorState, raw string) tea.Cmd {
	name, columns, err := editor.ParseBoard(raw)
	if err != nil {
		return notifyError(m, err, "Failed to parse board")
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if _, err := m.Boards.UpdateColumns(ctx, boardservice.UpdateColumnsRequest{
		BoardID:        session.BoardID,
		Name:           name,
		Columns:        columns,
		CurrentColumns: session.BoardColumns,
	}); err != nil {
		return notifyError(m, err, fmt.Sprintf("Failed to update board %q", name))
	}

	if err := modelops.RefreshBoardMetas(m); err != nil {
		return notifyError(m, err, "Failed to reload boards")
	}
	return nil
}

// notifyError logs the failure, shows it as a banner, and schedules the
// deferred clear. Typed domain errors keep their exact wording; anything
// else falls back to the generic message.
func notifyError(m *tui.Model, err error, fallback string) tea.Cmd {
	slog.Error(fallback, "error", err)
	m.NotificationState.Add(state.LevelError, userMessage(err, fallback))
	return tui.ClearNotificationsAfter()
}

// notifyInfo shows a transient confirmation banner with the same deferred
// clear as errors.
func notifyInfo(m *tui.Model, message string) tea.Cmd {
	m.NotificationState.Add(state.LevelInfo, message)
	return tui.ClearNotificationsAfter()
}
