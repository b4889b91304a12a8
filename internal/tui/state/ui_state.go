package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	BoardListMode     Mode = iota // Picking a board from the recency-sorted list
	NormalMode                    // Navigating the loaded board
	CardDetailMode                // Reading a single card's body
	MoveCardMode                  // Relocating the selected card between columns
	DeleteConfirmMode             // Confirming card deletion
)

// UIState manages the user interface state.
// This includes navigation (column/card/board selection), terminal
// dimensions, the current interaction mode, and the delete confirmation
// toggle.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the currently selected card within the
	// selected column, or -1 when that column is empty
	selectedCard int

	// selectedBoard is the index into the board meta list (BoardListMode only)
	selectedBoard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// confirmYes is the delete confirmation toggle; it resets to "No"
	// every time DeleteConfirmMode is entered
	confirmYes bool

	// cardScrollOffsets tracks the vertical scroll offset for each column
	// Key: columnID, Value: scroll offset (index of first visible card)
	cardScrollOffsets map[int]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		selectedColumn:    0,
		selectedCard:      -1,
		selectedBoard:     0,
		width:             0,
		height:            0,
		mode:              BoardListMode,
		cardScrollOffsets: make(map[int]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the currently selected card, or -1 when
// the selected column has none.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// SelectedBoard returns the index of the highlighted board in the board list.
func (s *UIState) SelectedBoard() int {
	return s.selectedBoard
}

// SetSelectedBoard updates the highlighted board index.
func (s *UIState) SetSelectedBoard(index int) {
	s.selectedBoard = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the main content area.
// This is terminal height minus the header and status bar, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // board name + gap line
	const statusBarHeight = 2 // gap line + status bar
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ConfirmYes reports whether the delete confirmation is on "Yes".
func (s *UIState) ConfirmYes() bool {
	return s.confirmYes
}

// SetConfirmYes sets the delete confirmation toggle.
func (s *UIState) SetConfirmYes(yes bool) {
	s.confirmYes = yes
}

// ToggleConfirm flips the delete confirmation between Yes and No.
func (s *UIState) ToggleConfirm() {
	s.confirmYes = !s.confirmYes
}

// ResetSelection resets column and card selection for a freshly loaded board.
// The card index must be set afterwards based on the first column's contents.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedCard = -1
	s.cardScrollOffsets = make(map[int]int)
}

// CardScrollOffset returns the vertical scroll offset for a given column.
// Returns 0 if the column has no scroll offset set.
func (s *UIState) CardScrollOffset(columnID int) int {
	if offset, ok := s.cardScrollOffsets[columnID]; ok {
		return offset
	}
	return 0
}

// SetCardScrollOffset updates the vertical scroll offset for a given column.
func (s *UIState) SetCardScrollOffset(columnID int, offset int) {
	s.cardScrollOffsets[columnID] = max(0, offset)
}

// EnsureCardVisible adjusts the scroll offset so the selected card is visible.
// This should be called after card navigation within a column.
//
// Parameters:
//   - columnID: the column containing the card
//   - selectedCardIdx: index of the selected card within the column
//   - visibleCount: number of cards that can be displayed at once
func (s *UIState) EnsureCardVisible(columnID int, selectedCardIdx int, visibleCount int) {
	if selectedCardIdx < 0 {
		return
	}
	offset := s.CardScrollOffset(columnID)

	// If selection is above visible area, scroll up
	if selectedCardIdx < offset {
		s.cardScrollOffsets[columnID] = selectedCardIdx
	}

	// If selection is below visible area, scroll down
	if selectedCardIdx >= offset+visibleCount {
		s.cardScrollOffsets[columnID] = selectedCardIdx - visibleCount + 1
	}
}
