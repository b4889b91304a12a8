package editor

import (
	"regexp"

	"github.com/tavla-tui/tavla/internal/models"
)

var (
	cardRegex    = regexp.MustCompile("(?s)(?P<title>[^=\n]+)\n=+\n\n(?P<body>.*)")
	boardRegex   = regexp.MustCompile("(?P<name>[^=\n]+)\n=+\n\n")
	columnsRegex = regexp.MustCompile("- (?P<column>[^\n]+)")
)

// ParseCard extracts a card's title and body from edited text. The body may
// be empty; the title and delimiter must be present.
func ParseCard(raw string) (title, body string, err error) {
	m := cardRegex.FindStringSubmatch(raw)
	if m == nil {
		return "", "", &models.ParseError{Kind: "card", Reason: "could not parse raw card text"}
	}
	return m[cardRegex.SubexpIndex("title")], m[cardRegex.SubexpIndex("body")], nil
}

// ParseBoard extracts a board's name and column names from edited text.
// At least one "- name" column line must be present.
func ParseBoard(raw string) (name string, columns []string, err error) {
	m := boardRegex.FindStringSubmatch(raw)
	if m == nil {
		return "", nil, &models.ParseError{Kind: "board", Reason: "could not parse raw board text: bad board name"}
	}
	name = m[boardRegex.SubexpIndex("name")]

	columnIdx := columnsRegex.SubexpIndex("column")
	for _, cm := range columnsRegex.FindAllStringSubmatch(raw, -1) {
		columns = append(columns, cm[columnIdx])
	}
	if len(columns) == 0 {
		return "", nil, &models.ParseError{Kind: "board", Reason: "could not parse raw board text: bad columns"}
	}
	return name, columns, nil
}
