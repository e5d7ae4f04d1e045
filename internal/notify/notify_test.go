package notify

import (
	"strings"
	"testing"
	"unicode/utf8"
)

type captured struct {
	title, message string
}

func recordingNotifier(enabled bool, sent *[]captured) *Notifier {
	return &Notifier{
		enabled: enabled,
		send: func(title, message, _ string) error {
			*sent = append(*sent, captured{title, message})
			return nil
		},
	}
}

func TestNotifier_Error(t *testing.T) {
	var sent []captured
	recordingNotifier(true, &sent).Error("register hotkey alt+l for Right: BadAccess")

	if len(sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sent))
	}
	if sent[0].title != "gridsnap: error" {
		t.Errorf("unexpected title %q", sent[0].title)
	}
	if !strings.Contains(sent[0].message, "BadAccess") {
		t.Errorf("unexpected message %q", sent[0].message)
	}
}

func TestNotifier_Disabled(t *testing.T) {
	var sent []captured
	recordingNotifier(false, &sent).Error("ignored")
	if len(sent) != 0 {
		t.Fatalf("disabled notifier sent %d notifications", len(sent))
	}

	var nilNotifier *Notifier
	nilNotifier.Error("ignored")
	if nilNotifier.Enabled() {
		t.Fatal("nil notifier must report disabled")
	}
}

func TestNotifier_TruncatesLongMessages(t *testing.T) {
	var sent []captured
	recordingNotifier(true, &sent).Error(strings.Repeat("x", 500))

	if got := len(sent[0].message); got != maxMessageLen+3 {
		t.Fatalf("expected truncated message of %d bytes, got %d", maxMessageLen+3, got)
	}
}

func TestNotifier_TruncatesOnRuneBoundary(t *testing.T) {
	var sent []captured
	recordingNotifier(true, &sent).Error("a" + strings.Repeat("é", 150))

	msg := sent[0].message
	if !utf8.ValidString(msg) {
		t.Fatalf("truncated message is not valid UTF-8: %q", msg)
	}
	if !strings.HasSuffix(msg, "...") || len(msg) > maxMessageLen+3 {
		t.Fatalf("unexpected truncation %q (%d bytes)", msg, len(msg))
	}
	if want := "a" + strings.Repeat("é", 99) + "..."; msg != want {
		t.Fatalf("got %q, want %q", msg, want)
	}
}
