package components

const (
	// CardHeight is the fixed rendered height of a card:
	// top border + title line + id line + bottom border
	CardHeight = 4

	// columnOverhead is the column chrome around the card area:
	// borders and bottom padding (3) + header (1) + top indicator (1)
	columnOverhead = 5

	// MinColumnWidth keeps narrow terminals from crushing columns into
	// unreadable slivers; the board clips instead
	MinColumnWidth = 20
)

// VisibleCards returns how many cards fit in a column of the given
// total height. At least one card is always shown.
func VisibleCards(height int) int {
	return max((height-columnOverhead)/CardHeight, 1)
}
