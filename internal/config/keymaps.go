package config

// KeyMappings defines all configurable key bindings. Arrow keys, enter, and
// esc stay hardwired next to their configurable equivalents.
type KeyMappings struct {
	// Cards
	NewCard    string `yaml:"new_card"`
	EditCard   string `yaml:"edit_card"`
	DeleteCard string `yaml:"delete_card"`
	MoveCard   string `yaml:"move_card"`
	ViewCard   string `yaml:"view_card"`

	// Boards
	NewBoard   string `yaml:"new_board"`
	EditBoard  string `yaml:"edit_board"`
	OpenBoard  string `yaml:"open_board"`
	ListBoards string `yaml:"list_boards"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		NewCard:    "n",
		EditCard:   "e",
		DeleteCard: "d",
		MoveCard:   "m",
		ViewCard:   "enter",

		// Boards
		NewBoard:   "n",
		EditBoard:  "e",
		OpenBoard:  "enter",
		ListBoards: "b",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		// Other
		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NewCard == "" {
		k.NewCard = defaults.NewCard
	}
	if k.EditCard == "" {
		k.EditCard = defaults.EditCard
	}
	if k.DeleteCard == "" {
		k.DeleteCard = defaults.DeleteCard
	}
	if k.MoveCard == "" {
		k.MoveCard = defaults.MoveCard
	}
	if k.ViewCard == "" {
		k.ViewCard = defaults.ViewCard
	}
	if k.NewBoard == "" {
		k.NewBoard = defaults.NewBoard
	}
	if k.EditBoard == "" {
		k.EditBoard = defaults.EditBoard
	}
	if k.OpenBoard == "" {
		k.OpenBoard = defaults.OpenBoard
	}
	if k.ListBoards == "" {
		k.ListBoards = defaults.ListBoards
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
