// Package editor renders the text handed to an external editor and parses
// what comes back. A card is a title, a delimiter line of equals signs, a
// blank line, and a free-form body. A board is its name in the same shape
// followed by one "- name" line per column.
package editor

import "strings"

// Templates seeded into the editor when creating new entities.
const (
	NewCardTemplate  = "Title\n==========\n\nContent goes here"
	NewBoardTemplate = "Board Name\n==========\n\n- Column #1\n- Column #2\n- Column #3"
)

// CardText renders an existing card for editing.
func CardText(title, body string) string {
	return title + "\n==========\n\n" + body
}

// BoardText renders an existing board's name and column list for editing.
func BoardText(name string, columns []string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("\n==========\n\n")
	for _, column := range columns {
		b.WriteString("- ")
		b.WriteString(column)
		b.WriteString("\n")
	}
	return b.String()
}
