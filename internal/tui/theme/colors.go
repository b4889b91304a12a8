package theme

// Colors holds the current theme colors, initialized by Init.
// Only the highlight is configurable; the rest is a fixed dark palette.
var (
	Highlight  string
	Background string
	Subtle     string
	Normal     string
	Create     string
	Delete     string
	CardBorder string
	CardBg     string
	SelectedBg string
	InfoFg     string
	InfoBg     string
	ErrorFg    string
	ErrorBg    string
)

// Init initializes the theme colors from the configured highlight color.
func Init(highlight string) {
	Highlight = highlight
	Background = "#1C1C1C"
	Subtle = "#585858"
	Normal = "#D0D0D0"
	Create = "#5FD75F"
	Delete = "#FF0000"
	CardBorder = "#585858"
	CardBg = "#262626"
	SelectedBg = "#3A3A3A"
	InfoFg = "#00AFFF"
	InfoBg = "#00005F"
	ErrorFg = "#FF0000"
	ErrorBg = "#5F0000"
}
