// Package notify shows desktop notifications for failures that would
// otherwise go unseen.
package notify

import (
	"os"
	"unicode/utf8"

	"github.com/gen2brain/beeep"
	"golang.org/x/term"
)

const appName = "gridsnap"

const maxMessageLen = 200

// Notifier sends desktop notifications.
type Notifier struct {
	enabled bool
	send    func(title, message, icon string) error
}

// New creates a Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled, send: beeep.Notify}
}

// ForDetached creates a Notifier that is only enabled when stderr is not a
// terminal, i.e. when the process was started from an autostart entry and
// nobody can read its log output.
func ForDetached(enabled bool) *Notifier {
	return New(enabled && !term.IsTerminal(int(os.Stderr.Fd())))
}

// Enabled reports whether notifications will be shown.
func (n *Notifier) Enabled() bool {
	return n != nil && n.enabled
}

// Error shows an error notification.
func (n *Notifier) Error(msg string) {
	n.notify(appName+": error", msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.Enabled() {
		return
	}
	message = truncate(message, maxMessageLen)
	// Notification failures are not actionable.
	_ = n.send(title, message, "")
}

// truncate cuts s to at most n bytes on a rune boundary and marks the cut.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
