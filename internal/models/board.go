package models

import "time"

// Board is a fully loaded board: its columns in display order, each column
// holding its cards newest-first.
type Board struct {
	ID      int
	Name    string
	Columns []*Column
}

// BoardMeta is a summary row for the board list. Columns holds the column
// names reconstructed in stored order.
type BoardMeta struct {
	ID         int
	Name       string
	Columns    []string
	InsertedAt time.Time
	UpdatedAt  time.Time
	ViewedAt   time.Time
}

// Column is a named lane within a board. Order is the stored position index;
// duplicates are tolerated mid-transaction while a reorder is in flight.
type Column struct {
	ID    int
	Name  string
	Order int
	Cards []*Card
}
