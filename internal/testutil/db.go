package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// An in-memory database exists per connection, so the pool must never
	// open a second one
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	// Run migrations inline
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	return db
}

// createTestSchema creates the complete database schema for testing
func createTestSchema(db *sql.DB) error {
	schema := `
	-- Boards table with the per-board external id counter
	CREATE TABLE IF NOT EXISTS boards (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		card_id INTEGER NOT NULL DEFAULT 1,
		inserted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		viewed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE UNIQUE INDEX IF NOT EXISTS boards_name ON boards (name);

	-- Statuses are board columns ordered by column_order
	CREATE TABLE IF NOT EXISTS statuses (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		column_order INTEGER NOT NULL,
		board_id INTEGER NOT NULL,
		inserted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE,
		UNIQUE (name, board_id)
	);

	CREATE INDEX IF NOT EXISTS statuses_board_id ON statuses (board_id);

	-- Cards table
	CREATE TABLE IF NOT EXISTS cards (
		id INTEGER PRIMARY KEY,
		external_id INTEGER NOT NULL,
		board_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		status_id INTEGER NOT NULL,
		body TEXT NOT NULL,
		doing_at TIMESTAMP,
		done_at TIMESTAMP,
		inserted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE,
		FOREIGN KEY (status_id) REFERENCES statuses(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS cards_board_id ON cards (board_id);
	CREATE INDEX IF NOT EXISTS cards_status_id ON cards (status_id);

	-- Stamp card and board on card updates
	CREATE TRIGGER IF NOT EXISTS cards_updated AFTER UPDATE ON cards
	FOR EACH ROW
	BEGIN
		UPDATE cards
		SET updated_at = CURRENT_TIMESTAMP
		WHERE cards.id = NEW.id;

		UPDATE boards
		SET updated_at = CURRENT_TIMESTAMP
		WHERE boards.id = NEW.board_id;
	END;
	`

	_, err := db.ExecContext(context.Background(), schema)
	return err
}

// CreateTestBoard creates a board with the given columns and returns its ID
func CreateTestBoard(t *testing.T, db *sql.DB, name string, columns ...string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO boards (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	boardID, _ := result.LastInsertId()

	for order, column := range columns {
		_, err := db.ExecContext(context.Background(),
			"INSERT INTO statuses (name, column_order, board_id) VALUES (?, ?, ?)",
			column, order, boardID)
		if err != nil {
			t.Fatalf("Failed to create test column: %v", err)
		}
	}

	return int(boardID)
}

// CreateTestCard creates a card in the named column using the board's
// counter, the same way the application inserts cards, and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, boardID int, column, title, body string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(), `
		INSERT INTO cards (external_id, board_id, status_id, title, body)
		VALUES (
			(SELECT card_id FROM boards WHERE id = ?),
			?,
			(SELECT id FROM statuses WHERE board_id = ? AND name = ?),
			?,
			?
		)`,
		boardID, boardID, boardID, column, title, body)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}

	_, err = db.ExecContext(context.Background(),
		"UPDATE boards SET card_id = card_id + 1 WHERE id = ?", boardID)
	if err != nil {
		t.Fatalf("Failed to advance card counter: %v", err)
	}

	cardID, _ := result.LastInsertId()
	return int(cardID)
}

// CardColumn returns the name of the column a card currently sits in
func CardColumn(t *testing.T, db *sql.DB, cardID int) string {
	t.Helper()
	var column string
	err := db.QueryRowContext(context.Background(), `
		SELECT statuses.name
		FROM cards
		INNER JOIN statuses ON statuses.id = cards.status_id
		WHERE cards.id = ?`,
		cardID).Scan(&column)
	if err != nil {
		t.Fatalf("Failed to look up card column: %v", err)
	}
	return column
}
