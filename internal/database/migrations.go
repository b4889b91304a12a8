package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if it does not exist yet.
// Every statement is idempotent so reopening an existing database is safe.
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Boards. card_id is the per-board counter handed out as the next
	// card's external id.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS boards (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			card_id INTEGER NOT NULL DEFAULT 1,
			inserted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			viewed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE UNIQUE INDEX IF NOT EXISTS boards_name ON boards (name)
	`)
	if err != nil {
		return err
	}

	// Statuses are the columns of a board, ordered by column_order.
	// column_order has no unique index: reorders write transient duplicates
	// inside a transaction.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS statuses (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			column_order INTEGER NOT NULL,
			board_id INTEGER NOT NULL,
			inserted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE,
			UNIQUE (name, board_id)
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS statuses_board_id ON statuses (board_id)
	`)
	if err != nil {
		return err
	}

	// Cards. external_id is the board-scoped number shown to the user and is
	// never reused, even after deletions.
	_, err = db.ExecContext(ctx, `
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
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS cards_board_id ON cards (board_id)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS cards_status_id ON cards (status_id)
	`)
	if err != nil {
		return err
	}

	// Stamp the card and its board whenever a card changes, so the board
	// list can sort by recent activity.
	_, err = db.ExecContext(ctx, `
		CREATE TRIGGER IF NOT EXISTS cards_updated AFTER UPDATE ON cards
		FOR EACH ROW
		BEGIN
			UPDATE cards
			SET updated_at = CURRENT_TIMESTAMP
			WHERE cards.id = NEW.id;

			UPDATE boards
			SET updated_at = CURRENT_TIMESTAMP
			WHERE boards.id = NEW.board_id;
		END
	`)
	if err != nil {
		return err
	}

	return nil
}
