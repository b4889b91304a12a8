package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tavla-tui/tavla/internal/models"
)

// CardRepo handles all card-related database operations.
type CardRepo struct {
	db *sql.DB
}

// InsertCard creates a card in the board's first column. The card takes the
// board's current counter value as its external id and the counter advances,
// so external ids are never reused even after deletions.
func (r *CardRepo) InsertCard(ctx context.Context, boardID int, title, body string) (*models.Card, error) {
	var card *models.Card
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var statusID int
		err := tx.QueryRowContext(ctx, `
			SELECT id
			FROM statuses
			WHERE board_id = ?
			ORDER BY column_order ASC
			LIMIT 1
		`, boardID).Scan(&statusID)
		if err != nil {
			return fmt.Errorf("failed to find first column of board %d: %w", boardID, err)
		}

		var externalID int
		err = tx.QueryRowContext(ctx,
			`SELECT card_id FROM boards WHERE id = ?`,
			boardID,
		).Scan(&externalID)
		if err != nil {
			return fmt.Errorf("failed to get card counter for board %d: %w", boardID, err)
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO cards (external_id, board_id, status_id, title, body) VALUES (?, ?, ?, ?, ?)`,
			externalID, boardID, statusID, title, body,
		)
		if err != nil {
			return fmt.Errorf("failed to insert card %q: %w", title, err)
		}

		cardID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get card ID after insert: %w", err)
		}

		created := &models.Card{
			ID:         int(cardID),
			ExternalID: externalID,
			Title:      title,
			Body:       body,
		}
		err = tx.QueryRowContext(ctx,
			`SELECT inserted_at, updated_at FROM cards WHERE id = ?`,
			cardID,
		).Scan(&created.InsertedAt, &created.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to read back card %d: %w", cardID, err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE boards SET card_id = card_id + 1 WHERE id = ?`,
			boardID,
		)
		if err != nil {
			return fmt.Errorf("failed to advance card counter for board %d: %w", boardID, err)
		}

		card = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// UpdateCard sets a card's title and body and returns the new updated_at
// written by the update trigger.
func (r *CardRepo) UpdateCard(ctx context.Context, cardID int, title, body string) (time.Time, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE cards SET title = ?, body = ? WHERE id = ?`,
		title, body, cardID,
	)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to update card %d: %w", cardID, err)
	}

	var updatedAt time.Time
	err = r.db.QueryRowContext(ctx,
		`SELECT updated_at FROM cards WHERE id = ?`,
		cardID,
	).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, fmt.Errorf("card %d: %w", cardID, models.ErrCardNotFound)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read back card %d: %w", cardID, err)
	}
	return updatedAt, nil
}

// SetCardStatus moves a card to the column with the given name on its board.
func (r *CardRepo) SetCardStatus(ctx context.Context, boardID, cardID int, columnName string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE cards
		SET status_id = (
			SELECT id
			FROM statuses
			WHERE board_id = ?
			AND name = ?
		)
		WHERE id = ?
	`, boardID, columnName, cardID)
	if err != nil {
		return fmt.Errorf("failed to move card %d to column %q: %w", cardID, columnName, err)
	}
	return nil
}

// DeleteCard removes a card permanently.
func (r *CardRepo) DeleteCard(ctx context.Context, cardID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete card %d: %w", cardID, err)
	}
	return nil
}
