// Package database defines repository interfaces for data access
package database

import (
	"context"
	"time"

	"github.com/tavla-tui/tavla/internal/models"
)

// BoardStore defines board-level operations.
type BoardStore interface {
	CreateBoard(ctx context.Context, name string, columns []string) (int, error)
	GetBoardMetas(ctx context.Context) ([]*models.BoardMeta, error)
	LoadBoard(ctx context.Context, boardID int) (*models.Board, error)
	LoadMostRecentlyViewedBoard(ctx context.Context) (*models.Board, error)
	UpdateBoardColumnsOrder(ctx context.Context, boardID int, name string, columns []string) (*models.Board, error)
}

// CardStore defines card-level operations.
type CardStore interface {
	InsertCard(ctx context.Context, boardID int, title, body string) (*models.Card, error)
	UpdateCard(ctx context.Context, cardID int, title, body string) (time.Time, error)
	SetCardStatus(ctx context.Context, boardID, cardID int, columnName string) error
	DeleteCard(ctx context.Context, cardID int) error
}

// DataStore defines the unified interface for all data operations needed by
// the services and the TUI. Consumers can depend on the smaller interfaces
// for better testability and clearer dependencies.
type DataStore interface {
	BoardStore
	CardStore
}
