package board

import (
	"context"
	"errors"
	"testing"

	"github.com/tavla-tui/tavla/internal/database"
	"github.com/tavla-tui/tavla/internal/models"
	"github.com/tavla-tui/tavla/internal/testutil"
)

func newTestService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	return NewService(repo), repo
}

func TestCreateBoardRequiresColumns(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateBoardRequest{Name: "empty"})
	if !errors.Is(err, ErrNoColumns) {
		t.Fatalf("Expected ErrNoColumns, got %v", err)
	}

	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %T", err)
	}
	if validationErr.Reason != "Board must have at least 1 column" {
		t.Errorf("Unexpected message %q", validationErr.Reason)
	}
}

func TestCreateBoard(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	boardID, err := svc.Create(context.Background(), CreateBoardRequest{
		Name:    "work",
		Columns: []string{"Todo", "Done"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	metas, err := svc.Metas(context.Background())
	if err != nil {
		t.Fatalf("Failed to get metas: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != boardID || metas[0].Name != "work" {
		t.Errorf("Unexpected metas %+v", metas)
	}
}

func TestUpdateColumnsRejectsDroppedColumn(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	boardID, err := svc.Create(context.Background(), CreateBoardRequest{
		Name:    "work",
		Columns: []string{"Todo", "Done"},
	})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	_, err = svc.UpdateColumns(context.Background(), UpdateColumnsRequest{
		BoardID:        boardID,
		Name:           "work",
		Columns:        []string{"Todo"},
		CurrentColumns: []string{"Todo", "Done"},
	})
	if !errors.Is(err, ErrColumnsMismatch) {
		t.Fatalf("Expected ErrColumnsMismatch, got %v", err)
	}

	// Nothing may change when the update is rejected
	board, err := svc.Load(context.Background(), boardID)
	if err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}
	if len(board.Columns) != 2 || board.Columns[0].Name != "Todo" || board.Columns[1].Name != "Done" {
		t.Errorf("Board columns changed after rejected update: %+v", board.Columns)
	}
}

func TestUpdateColumnsReorders(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	boardID, err := svc.Create(context.Background(), CreateBoardRequest{
		Name:    "work",
		Columns: []string{"Todo", "Doing", "Done"},
	})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	board, err := svc.UpdateColumns(context.Background(), UpdateColumnsRequest{
		BoardID:        boardID,
		Name:           "rebalanced",
		Columns:        []string{"Done", "Doing", "Todo"},
		CurrentColumns: []string{"Todo", "Doing", "Done"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if board.Name != "rebalanced" {
		t.Errorf("Expected renamed board, got %q", board.Name)
	}
	for i, want := range []string{"Done", "Doing", "Todo"} {
		if board.Columns[i].Name != want {
			t.Errorf("Column %d: expected %q, got %q", i, want, board.Columns[i].Name)
		}
	}
}

func TestUpdateColumnsAllowsNewColumns(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	boardID, err := svc.Create(context.Background(), CreateBoardRequest{
		Name:    "work",
		Columns: []string{"Todo"},
	})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	board, err := svc.UpdateColumns(context.Background(), UpdateColumnsRequest{
		BoardID:        boardID,
		Name:           "work",
		Columns:        []string{"Todo", "Someday"},
		CurrentColumns: []string{"Todo"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(board.Columns) != 2 || board.Columns[1].Name != "Someday" {
		t.Errorf("Expected new column appended, got %+v", board.Columns)
	}
}

func TestUpdateColumnsRequiresColumns(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.UpdateColumns(context.Background(), UpdateColumnsRequest{
		BoardID:        1,
		Name:           "work",
		CurrentColumns: []string{"Todo"},
	})
	if !errors.Is(err, ErrNoColumns) {
		t.Fatalf("Expected ErrNoColumns, got %v", err)
	}
}

func TestLoadMostRecentWithoutBoards(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	board, err := svc.LoadMostRecent(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if board != nil {
		t.Errorf("Expected nil board, got %+v", board)
	}
}
