package handlers

import (
	"errors"

	"github.com/tavla-tui/tavla/internal/models"
)

// userMessage decides what the banner says. Parse, validation, and
// constraint failures carry user-facing wording already; everything else
// gets the caller's fallback so internals stay out of the UI.
func userMessage(err error, fallback string) string {
	var parseErr *models.ParseError
	var validationErr *models.ValidationError
	var constraintErr *models.ConstraintError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) || errors.As(err, &constraintErr) {
		return err.Error()
	}
	return fallback
}
