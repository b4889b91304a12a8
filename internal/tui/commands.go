package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// notificationTTL is how long a banner stays up without further input.
const notificationTTL = 10 * time.Second

// ClearNotificationsAfter schedules the deferred banner clear. Handlers
// return it from every path that adds a notification.
func ClearNotificationsAfter() tea.Cmd {
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return ClearNotificationsMsg{}
	})
}
