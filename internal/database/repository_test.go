package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/tavla-tui/tavla/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// An in-memory database exists per connection, so the pool must never
	// open a second one
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	return db
}

// backdateBoard pins a board's viewed_at so ordering tests do not depend on
// sub-second timing
func backdateBoard(t *testing.T, db *sql.DB, boardID int, viewedAt string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"UPDATE boards SET viewed_at = ? WHERE id = ?", viewedAt, boardID)
	if err != nil {
		t.Fatalf("Failed to backdate board %d: %v", boardID, err)
	}
}

func TestCreateBoardAndLoad(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	boardID, err := repo.CreateBoard(context.Background(), "work", []string{"Todo", "Doing", "Done"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	board, err := repo.LoadBoard(context.Background(), boardID)
	if err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}

	if board.Name != "work" {
		t.Errorf("Expected board name 'work', got %q", board.Name)
	}
	if len(board.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(board.Columns))
	}
	for i, want := range []string{"Todo", "Doing", "Done"} {
		if board.Columns[i].Name != want {
			t.Errorf("Column %d: expected %q, got %q", i, want, board.Columns[i].Name)
		}
		if len(board.Columns[i].Cards) != 0 {
			t.Errorf("Column %d: expected no cards, got %d", i, len(board.Columns[i].Cards))
		}
	}
}

func TestCreateBoardDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.CreateBoard(context.Background(), "work", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	_, err = repo.CreateBoard(context.Background(), "work", []string{"Backlog"})
	if err == nil {
		t.Fatal("Expected duplicate board name to fail")
	}
	var constraintErr *models.ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Errorf("Expected ConstraintError, got %T: %v", err, err)
	}
}

func TestCreateBoardRollsBackOnDuplicateColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.CreateBoard(context.Background(), "work", []string{"Now", "Now"})
	if err == nil {
		t.Fatal("Expected duplicate column names to fail")
	}
	var constraintErr *models.ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Errorf("Expected ConstraintError, got %T: %v", err, err)
	}

	// The whole creation must roll back, board row included
	var count int
	err = db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM boards").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count boards: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 boards after rollback, got %d", count)
	}
}

func TestInsertCardExternalIDsNeverReused(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	boardID, err := repo.CreateBoard(context.Background(), "work", []string{"Todo", "Done"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	first, err := repo.InsertCard(context.Background(), boardID, "first", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}
	second, err := repo.InsertCard(context.Background(), boardID, "second", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}

	if first.ExternalID != 1 || second.ExternalID != 2 {
		t.Errorf("Expected external ids 1 and 2, got %d and %d", first.ExternalID, second.ExternalID)
	}

	// Deleting cards must not recycle their external ids
	if err := repo.DeleteCard(context.Background(), first.ID); err != nil {
		t.Fatalf("Failed to delete card: %v", err)
	}
	if err := repo.DeleteCard(context.Background(), second.ID); err != nil {
		t.Fatalf("Failed to delete card: %v", err)
	}

	third, err := repo.InsertCard(context.Background(), boardID, "third", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}
	fourth, err := repo.InsertCard(context.Background(), boardID, "fourth", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}

	if third.ExternalID != 3 || fourth.ExternalID != 4 {
		t.Errorf("Expected external ids 3 and 4, got %d and %d", third.ExternalID, fourth.ExternalID)
	}

	// Each board keeps its own counter while internal ids grow globally
	otherID, err := repo.CreateBoard(context.Background(), "home", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	other, err := repo.InsertCard(context.Background(), otherID, "chores", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}
	if other.ExternalID != 1 {
		t.Errorf("Expected external id 1 on a fresh board, got %d", other.ExternalID)
	}
	if other.ID <= fourth.ID {
		t.Errorf("Expected internal id above %d, got %d", fourth.ID, other.ID)
	}
}

func TestInsertCardGoesToFirstColumnNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	boardID, err := repo.CreateBoard(context.Background(), "work", []string{"Todo", "Done"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	older, err := repo.InsertCard(context.Background(), boardID, "older", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}
	newer, err := repo.InsertCard(context.Background(), boardID, "newer", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}

	board, err := repo.LoadBoard(context.Background(), boardID)
	if err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}

	todo := board.Columns[0]
	if len(todo.Cards) != 2 {
		t.Fatalf("Expected 2 cards in first column, got %d", len(todo.Cards))
	}
	if todo.Cards[0].ID != newer.ID || todo.Cards[1].ID != older.ID {
		t.Error("Cards should come back newest first")
	}
	if len(board.Columns[1].Cards) != 0 {
		t.Errorf("Expected second column empty, got %d cards", len(board.Columns[1].Cards))
	}
}

func TestUpdateCardPersists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	boardID, err := repo.CreateBoard(context.Background(), "work", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	card, err := repo.InsertCard(context.Background(), boardID, "before", "old body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}

	updatedAt, err := repo.UpdateCard(context.Background(), card.ID, "after", "new body")
	if err != nil {
		t.Fatalf("Failed to update card: %v", err)
	}
	if updatedAt.IsZero() {
		t.Error("Expected a non-zero updated_at from the update trigger")
	}

	board, err := repo.LoadBoard(context.Background(), boardID)
	if err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}
	got := board.Columns[0].Cards[0]
	if got.Title != "after" || got.Body != "new body" {
		t.Errorf("Expected updated title and body, got %q / %q", got.Title, got.Body)
	}
}

func TestUpdateCardMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.UpdateCard(context.Background(), 42, "title", "body")
	if !errors.Is(err, models.ErrCardNotFound) {
		t.Errorf("Expected ErrCardNotFound, got %v", err)
	}
}

func TestSetCardStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	boardID, err := repo.CreateBoard(context.Background(), "work", []string{"Todo", "Doing", "Done"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	card, err := repo.InsertCard(context.Background(), boardID, "task", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}

	if err := repo.SetCardStatus(context.Background(), boardID, card.ID, "Doing"); err != nil {
		t.Fatalf("Failed to set card status: %v", err)
	}

	board, err := repo.LoadBoard(context.Background(), boardID)
	if err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}
	if len(board.Columns[0].Cards) != 0 {
		t.Error("Card should have left the first column")
	}
	if len(board.Columns[1].Cards) != 1 || board.Columns[1].Cards[0].ID != card.ID {
		t.Error("Card should be in the second column")
	}
}

func TestDeleteCard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	boardID, err := repo.CreateBoard(context.Background(), "work", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	card, err := repo.InsertCard(context.Background(), boardID, "task", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}

	if err := repo.DeleteCard(context.Background(), card.ID); err != nil {
		t.Fatalf("Failed to delete card: %v", err)
	}

	board, err := repo.LoadBoard(context.Background(), boardID)
	if err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}
	if len(board.Columns[0].Cards) != 0 {
		t.Errorf("Expected no cards after delete, got %d", len(board.Columns[0].Cards))
	}
}

func TestGetBoardMetasColumnsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	columns := []string{"Backlog", "Now", "Review", "Shipped"}
	boardID, err := repo.CreateBoard(context.Background(), "product", columns)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	metas, err := repo.GetBoardMetas(context.Background())
	if err != nil {
		t.Fatalf("Failed to get board metas: %v", err)
	}
	if len(metas) != 1 {
		t.Fatalf("Expected 1 meta, got %d", len(metas))
	}
	meta := metas[0]
	if meta.ID != boardID || meta.Name != "product" {
		t.Errorf("Unexpected meta %d %q", meta.ID, meta.Name)
	}
	if len(meta.Columns) != len(columns) {
		t.Fatalf("Expected %d columns, got %d", len(columns), len(meta.Columns))
	}
	for i, want := range columns {
		if meta.Columns[i] != want {
			t.Errorf("Column %d: expected %q, got %q", i, want, meta.Columns[i])
		}
	}
}

func TestGetBoardMetasMostRecentlyViewedFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	alphaID, err := repo.CreateBoard(context.Background(), "alpha", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	betaID, err := repo.CreateBoard(context.Background(), "beta", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	backdateBoard(t, db, alphaID, "2020-01-01 00:00:00")
	backdateBoard(t, db, betaID, "2020-01-02 00:00:00")

	// Loading a board stamps viewed_at, promoting it to the front
	if _, err := repo.LoadBoard(context.Background(), alphaID); err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}

	metas, err := repo.GetBoardMetas(context.Background())
	if err != nil {
		t.Fatalf("Failed to get board metas: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("Expected 2 metas, got %d", len(metas))
	}
	if metas[0].ID != alphaID {
		t.Errorf("Expected board %d first, got %d", alphaID, metas[0].ID)
	}
}

func TestUpdateBoardColumnsOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	boardID, err := repo.CreateBoard(context.Background(), "work", []string{"Todo", "Doing", "Done"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	board, err := repo.UpdateBoardColumnsOrder(context.Background(), boardID, "reworked", []string{"Done", "Todo", "Doing"})
	if err != nil {
		t.Fatalf("Failed to update board columns order: %v", err)
	}

	if board.Name != "reworked" {
		t.Errorf("Expected renamed board, got %q", board.Name)
	}
	for i, want := range []string{"Done", "Todo", "Doing"} {
		if board.Columns[i].Name != want {
			t.Errorf("Column %d: expected %q, got %q", i, want, board.Columns[i].Name)
		}
	}
}

func TestUpdateBoardColumnsOrderKeepsCards(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	boardID, err := repo.CreateBoard(context.Background(), "work", []string{"Todo", "Done"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	card, err := repo.InsertCard(context.Background(), boardID, "task", "body")
	if err != nil {
		t.Fatalf("Failed to insert card: %v", err)
	}

	board, err := repo.UpdateBoardColumnsOrder(context.Background(), boardID, "work", []string{"Done", "Todo"})
	if err != nil {
		t.Fatalf("Failed to update board columns order: %v", err)
	}

	// The card stays attached to its column as the column moves
	if board.Columns[0].Name != "Done" || board.Columns[1].Name != "Todo" {
		t.Fatalf("Unexpected column order %q, %q", board.Columns[0].Name, board.Columns[1].Name)
	}
	if len(board.Columns[1].Cards) != 1 || board.Columns[1].Cards[0].ID != card.ID {
		t.Error("Card should still be in the Todo column")
	}
}

func TestUpdateBoardRenameToExistingName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.CreateBoard(context.Background(), "alpha", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	betaID, err := repo.CreateBoard(context.Background(), "beta", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	_, err = repo.UpdateBoardColumnsOrder(context.Background(), betaID, "alpha", []string{"Todo"})
	if err == nil {
		t.Fatal("Expected rename to an existing name to fail")
	}
	var constraintErr *models.ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Errorf("Expected ConstraintError, got %T: %v", err, err)
	}
}

func TestLoadBoardMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.LoadBoard(context.Background(), 999)
	if !errors.Is(err, models.ErrBoardNotFound) {
		t.Errorf("Expected ErrBoardNotFound, got %v", err)
	}
}

func TestLoadMostRecentlyViewedBoard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	// No boards yet
	board, err := repo.LoadMostRecentlyViewedBoard(context.Background())
	if err != nil {
		t.Fatalf("Failed to load most recently viewed board: %v", err)
	}
	if board != nil {
		t.Fatalf("Expected no board, got %q", board.Name)
	}

	alphaID, err := repo.CreateBoard(context.Background(), "alpha", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	betaID, err := repo.CreateBoard(context.Background(), "beta", []string{"Todo"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	backdateBoard(t, db, alphaID, "2020-01-02 00:00:00")
	backdateBoard(t, db, betaID, "2020-01-01 00:00:00")

	board, err = repo.LoadMostRecentlyViewedBoard(context.Background())
	if err != nil {
		t.Fatalf("Failed to load most recently viewed board: %v", err)
	}
	if board == nil || board.ID != alphaID {
		t.Fatalf("Expected board %d, got %+v", alphaID, board)
	}
}
