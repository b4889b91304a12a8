package board

import (
	"errors"

	"github.com/tavla-tui/tavla/internal/models"
)

// Domain errors for the board service
var (
	ErrInvalidBoardID = errors.New("invalid board ID")

	// Validation errors shown to the user verbatim
	ErrNoColumns       = &models.ValidationError{Reason: "Board must have at least 1 column"}
	ErrColumnsMismatch = &models.ValidationError{Reason: "Could not update board: columns do not match"}
)
