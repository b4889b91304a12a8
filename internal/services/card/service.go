package card

import (
	"context"
	"time"

	"github.com/tavla-tui/tavla/internal/models"
)

// Service defines all card-related business operations
type Service interface {
	Create(ctx context.Context, boardID int, title, body string) (*models.Card, error)
	Update(ctx context.Context, cardID int, title, body string) (time.Time, error)
	Move(ctx context.Context, boardID, cardID int, columnName string) error
	Delete(ctx context.Context, cardID int) error
}

// repository defines the data access methods needed by the card service.
// This interface is private to the service layer
type repository interface {
	InsertCard(ctx context.Context, boardID int, title, body string) (*models.Card, error)
	UpdateCard(ctx context.Context, cardID int, title, body string) (time.Time, error)
	SetCardStatus(ctx context.Context, boardID, cardID int, columnName string) error
	DeleteCard(ctx context.Context, cardID int) error
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new card service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// Create inserts a card into the board's first column
func (s *service) Create(ctx context.Context, boardID int, title, body string) (*models.Card, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.InsertCard(ctx, boardID, title, body)
}

// Update rewrites a card's title and body and returns the new updated_at
func (s *service) Update(ctx context.Context, cardID int, title, body string) (time.Time, error) {
	if cardID <= 0 {
		return time.Time{}, ErrInvalidCardID
	}
	return s.repo.UpdateCard(ctx, cardID, title, body)
}

// Move places a card in the named column of its board
func (s *service) Move(ctx context.Context, boardID, cardID int, columnName string) error {
	if boardID <= 0 {
		return ErrInvalidBoardID
	}
	if cardID <= 0 {
		return ErrInvalidCardID
	}
	return s.repo.SetCardStatus(ctx, boardID, cardID, columnName)
}

// Delete removes a card permanently
func (s *service) Delete(ctx context.Context, cardID int) error {
	if cardID <= 0 {
		return ErrInvalidCardID
	}
	return s.repo.DeleteCard(ctx, cardID)
}
