package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/tavla-tui/tavla/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sql.DB
}

// CreateBoard creates a board with its columns in the given order and
// returns the new board's id. Duplicate board or column names surface as a
// ConstraintError.
func (r *BoardRepo) CreateBoard(ctx context.Context, name string, columns []string) (int, error) {
	var boardID int
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO boards (name) VALUES (?)`,
			name,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return &models.ConstraintError{Entity: "board", Name: name, Err: err}
			}
			return fmt.Errorf("failed to insert board %q: %w", name, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get board ID after insert: %w", err)
		}
		boardID = int(id)

		for order, columnName := range columns {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO statuses (name, column_order, board_id) VALUES (?, ?, ?)`,
				columnName, order, boardID,
			)
			if err != nil {
				if isUniqueViolation(err) {
					return &models.ConstraintError{Entity: "column", Name: columnName, Err: err}
				}
				return fmt.Errorf("failed to insert column %q for board %d: %w", columnName, boardID, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return boardID, nil
}

// GetBoardMetas returns a summary of every board, most recently viewed
// first; viewed_at ties go to the newest board. Column names come back in
// stored order.
func (r *BoardRepo) GetBoardMetas(ctx context.Context) ([]*models.BoardMeta, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			boards.id,
			boards.name,
			group_concat(statuses.name, '|' ORDER BY statuses.column_order),
			boards.inserted_at,
			boards.updated_at,
			boards.viewed_at
		FROM boards
		INNER JOIN statuses
			ON statuses.board_id = boards.id
		GROUP BY boards.id, boards.name
		ORDER BY boards.viewed_at DESC, boards.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query board metas: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	metas := make([]*models.BoardMeta, 0, 10)
	for rows.Next() {
		meta := &models.BoardMeta{}
		var columnNames string
		if err := rows.Scan(&meta.ID, &meta.Name, &columnNames, &meta.InsertedAt, &meta.UpdatedAt, &meta.ViewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board meta row: %w", err)
		}
		meta.Columns = strings.Split(columnNames, "|")
		metas = append(metas, meta)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating board meta rows: %w", err)
	}
	return metas, nil
}

// LoadBoard loads a board with all its columns and cards, stamping its
// viewed_at so it becomes the most recently viewed board.
func (r *BoardRepo) LoadBoard(ctx context.Context, boardID int) (*models.Board, error) {
	var boardName string
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`SELECT name FROM boards WHERE id = ?`,
			boardID,
		).Scan(&boardName)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("board %d: %w", boardID, models.ErrBoardNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get board %d: %w", boardID, err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE boards SET viewed_at = CURRENT_TIMESTAMP WHERE id = ?`,
			boardID,
		)
		if err != nil {
			return fmt.Errorf("failed to stamp viewed_at for board %d: %w", boardID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	columns, err := r.getColumnsForBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	return &models.Board{
		ID:      boardID,
		Name:    boardName,
		Columns: columns,
	}, nil
}

// LoadMostRecentlyViewedBoard loads the board with the newest viewed_at
// without re-stamping it. Returns nil when no boards exist yet.
func (r *BoardRepo) LoadMostRecentlyViewedBoard(ctx context.Context) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM boards ORDER BY viewed_at DESC, id DESC LIMIT 1`,
	).Scan(&board.ID, &board.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get most recently viewed board: %w", err)
	}

	board.Columns, err = r.getColumnsForBoard(ctx, board.ID)
	if err != nil {
		return nil, err
	}
	return board, nil
}

// UpdateBoardColumnsOrder renames a board and rewrites its column order in
// one transaction, then reloads it. Column names not present yet are
// inserted; existing ones only change position.
func (r *BoardRepo) UpdateBoardColumnsOrder(ctx context.Context, boardID int, name string, columns []string) (*models.Board, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		for order, columnName := range columns {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO statuses (name, column_order, board_id)
				VALUES (?, ?, ?)
				ON CONFLICT (name, board_id) DO UPDATE SET column_order = excluded.column_order
			`, columnName, order, boardID)
			if err != nil {
				return fmt.Errorf("failed to order column %q for board %d: %w", columnName, boardID, err)
			}
		}

		_, err := tx.ExecContext(ctx,
			`UPDATE boards SET name = ? WHERE id = ?`,
			name, boardID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return &models.ConstraintError{Entity: "board", Name: name, Err: err}
			}
			return fmt.Errorf("failed to rename board %d: %w", boardID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.LoadBoard(ctx, boardID)
}

// getColumnsForBoard loads a board's columns in stored order, each with its
// cards newest-first.
func (r *BoardRepo) getColumnsForBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, column_order FROM statuses WHERE board_id = ? ORDER BY column_order ASC`,
		boardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns for board %d: %w", boardID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	columns := make([]*models.Column, 0, 5)
	for rows.Next() {
		column := &models.Column{}
		if err := rows.Scan(&column.ID, &column.Name, &column.Order); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		columns = append(columns, column)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column rows: %w", err)
	}

	for _, column := range columns {
		column.Cards, err = r.cardsForColumn(ctx, column.ID)
		if err != nil {
			return nil, err
		}
	}
	return columns, nil
}

// cardsForColumn returns a column's cards, newest first.
func (r *BoardRepo) cardsForColumn(ctx context.Context, statusID int) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, external_id, title, body, inserted_at, updated_at
		FROM cards
		WHERE status_id = ?
		ORDER BY id DESC
	`, statusID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards for column %d: %w", statusID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	cards := make([]*models.Card, 0, 10)
	for rows.Next() {
		card := &models.Card{}
		if err := rows.Scan(&card.ID, &card.ExternalID, &card.Title, &card.Body, &card.InsertedAt, &card.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}
	return cards, nil
}
