package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tavla-tui/tavla/internal/models"
	"github.com/tavla-tui/tavla/internal/tui/theme"
)

// RenderColumn renders a complete column with its header and cards
//
// Layout:
//
//	{Name} ({count})
//	▲ more above (when scrolled)
//	{Card 1}
//	{Card 2}
//	...
//	▼ more below (when more cards follow)
//
// Parameters:
//   - column: the column to render
//   - width: total column width including borders
//   - height: total column height including borders (0 for auto)
//   - selected: whether this column holds the cursor
//   - selectedCardIdx: index of the selected card (-1 if not this column)
//   - scrollOffset: index of the first visible card
func RenderColumn(column *models.Column, width, height int, selected bool, selectedCardIdx, scrollOffset int) string {
	header := fmt.Sprintf("%s (%d)", column.Name, len(column.Cards))
	content := TitleStyle.Render(header) + "\n"

	if len(column.Cards) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No cards")
	} else {
		maxVisible := VisibleCards(height)

		// The top indicator line is always reserved so cards do not
		// jump when scrolling starts
		if scrollOffset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(scrollOffset+maxVisible, len(column.Cards))
		visible := column.Cards[scrollOffset:endIdx]

		cardWidth := width - 4
		for i, card := range visible {
			actualIdx := scrollOffset + i
			content += RenderCard(card, cardWidth, selected && actualIdx == selectedCardIdx)
		}

		// Push the bottom indicator flush against the bottom padding.
		// Heights here are content lines: the style's borders and bottom
		// padding take 3 lines off the total height.
		usedLines := 1 + 1 + len(visible)*CardHeight
		hasMore := endIdx < len(column.Cards)
		bottomLines := 0
		if hasMore {
			bottomLines = 2 // newline + indicator text
		}

		remaining := (height - 3) - usedLines - bottomLines
		if remaining > 0 {
			content += strings.Repeat("\n", remaining)
		}
		if hasMore {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle.Width(width - 2)
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.Highlight))
	}
	if height > 0 {
		// Height() sets the content area, so take off the two border rows
		style = style.Height(height - 2)
	}

	return style.Render(content)
}
