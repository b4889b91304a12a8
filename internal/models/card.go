package models

import "time"

// Card is a single kanban card. ExternalID is the per-board human-facing
// number shown in the UI; ID is the global database key.
type Card struct {
	ID         int
	ExternalID int
	Title      string
	Body       string
	InsertedAt time.Time
	UpdatedAt  time.Time
}
