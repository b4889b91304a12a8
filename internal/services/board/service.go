package board

import (
	"context"

	"github.com/tavla-tui/tavla/internal/models"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	Metas(ctx context.Context) ([]*models.BoardMeta, error)
	Load(ctx context.Context, boardID int) (*models.Board, error)
	LoadMostRecent(ctx context.Context) (*models.Board, error)

	// Write operations
	Create(ctx context.Context, req CreateBoardRequest) (int, error)
	UpdateColumns(ctx context.Context, req UpdateColumnsRequest) (*models.Board, error)
}

// CreateBoardRequest encapsulates data for creating a board
type CreateBoardRequest struct {
	Name    string
	Columns []string
}

// UpdateColumnsRequest encapsulates data for renaming a board and reordering
// its columns. CurrentColumns is the column set the board had when the edit
// started; the new Columns must contain every one of them.
type UpdateColumnsRequest struct {
	BoardID        int
	Name           string
	Columns        []string
	CurrentColumns []string
}

// repository defines the data access methods needed by the board service.
// This interface is private to the service layer
type repository interface {
	CreateBoard(ctx context.Context, name string, columns []string) (int, error)
	GetBoardMetas(ctx context.Context) ([]*models.BoardMeta, error)
	LoadBoard(ctx context.Context, boardID int) (*models.Board, error)
	LoadMostRecentlyViewedBoard(ctx context.Context) (*models.Board, error)
	UpdateBoardColumnsOrder(ctx context.Context, boardID int, name string, columns []string) (*models.Board, error)
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new board service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// Metas returns summaries of all boards, most recently viewed first
func (s *service) Metas(ctx context.Context) ([]*models.BoardMeta, error) {
	return s.repo.GetBoardMetas(ctx)
}

// Load loads a board and marks it as the most recently viewed one
func (s *service) Load(ctx context.Context, boardID int) (*models.Board, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.LoadBoard(ctx, boardID)
}

// LoadMostRecent loads the last viewed board, or nil when none exist yet
func (s *service) LoadMostRecent(ctx context.Context) (*models.Board, error) {
	return s.repo.LoadMostRecentlyViewedBoard(ctx)
}

// Create creates a board after checking it has at least one column
func (s *service) Create(ctx context.Context, req CreateBoardRequest) (int, error) {
	if len(req.Columns) == 0 {
		return 0, ErrNoColumns
	}
	return s.repo.CreateBoard(ctx, req.Name, req.Columns)
}

// UpdateColumns renames a board and reorders its columns. Columns may be
// added, but dropping an existing column rejects the whole update: cards
// could otherwise be left pointing at an unreachable column.
func (s *service) UpdateColumns(ctx context.Context, req UpdateColumnsRequest) (*models.Board, error) {
	if req.BoardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	if len(req.Columns) == 0 {
		return nil, ErrNoColumns
	}

	missing := make(map[string]struct{}, len(req.CurrentColumns))
	for _, column := range req.CurrentColumns {
		missing[column] = struct{}{}
	}
	for _, column := range req.Columns {
		delete(missing, column)
	}
	if len(missing) > 0 {
		return nil, ErrColumnsMismatch
	}

	return s.repo.UpdateBoardColumnsOrder(ctx, req.BoardID, req.Name, req.Columns)
}
