package state

// EditorPurpose identifies what the external editor session is producing.
type EditorPurpose int

const (
	EditorNewCard EditorPurpose = iota
	EditorEditCard
	EditorNewBoard
	EditorEditBoard
)

// EditorState tracks an in-flight external editor session. The TUI suspends
// while the editor runs, so at most one session exists at a time.
type EditorState struct {
	// Active is true between launching the editor and applying its result
	Active bool

	// Purpose selects the apply step for the editor's output
	Purpose EditorPurpose

	// Path is the temp file handed to the editor
	Path string

	// CardID is the database id of the card being edited (EditorEditCard only)
	CardID int

	// BoardID and BoardColumns snapshot the board meta being edited
	// (EditorEditBoard only); the columns feed the superset check
	BoardID      int
	BoardColumns []string
}

// NewEditorState creates an EditorState with no session in flight.
func NewEditorState() *EditorState {
	return &EditorState{}
}

// Reset clears the session after its result has been applied or discarded.
func (s *EditorState) Reset() {
	*s = EditorState{}
}
