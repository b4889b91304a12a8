package tui

// EditorFinishedMsg reports the external editor process exiting. Err carries
// the process failure, if any; the edited text stays in the temp file.
type EditorFinishedMsg struct {
	Err error
}

// ClearNotificationsMsg asks the dispatcher to clear the banner stack. Every
// deferred timer sends one; clearing is idempotent so overlapping timers are
// harmless.
type ClearNotificationsMsg struct{}
