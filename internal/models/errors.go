package models

import (
	"errors"
	"fmt"
)

// Domain-specific errors shared across services and handlers
var (
	// ErrEmptySelection indicates an operation that needs a selected card
	// while the selection is empty
	ErrEmptySelection = errors.New("no card selected")

	// ErrBoardNotFound indicates a board lookup that matched no row
	ErrBoardNotFound = errors.New("board not found")

	// ErrCardNotFound indicates a card lookup that matched no row
	ErrCardNotFound = errors.New("card not found")
)

// ParseError indicates editor text that does not match the expected card or
// board shape. Kind names the entity ("card" or "board"), Reason the exact
// user-facing message.
type ParseError struct {
	Kind   string
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

// ConstraintError indicates a database uniqueness rejection, such as a
// duplicate board name.
type ConstraintError struct {
	Entity string
	Name   string
	Err    error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Name)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ValidationError indicates input that parsed cleanly but violates a domain
// rule, such as a board with no columns.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
