package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/allbin/go-msmouse"
)

// EventReceivedMsg wraps a decoded movement report for display.
type EventReceivedMsg struct {
	Event msmouse.Event
	Seq   uint64
}

// FormatButtons renders the pressed buttons as short glyphs ("L", "R",
// "L+R") or a dash when no button is held.
func FormatButtons(buttons msmouse.ButtonMask) string {
	var parts []string
	if buttons&msmouse.ButtonLeft != 0 {
		parts = append(parts, "L")
	}
	if buttons&msmouse.ButtonRight != 0 {
		parts = append(parts, "R")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "+")
}

// FormatDelta renders a movement delta with an explicit sign so columns
// of events stay visually aligned.
func FormatDelta(d int8) string {
	return fmt.Sprintf("%+d", d)
}

// FormatEventPlain renders an event as a single unstyled line, for
// non-TUI output.
func FormatEventPlain(ev msmouse.Event) string {
	return fmt.Sprintf("[%s] dx=%s dy=%s buttons=%s",
		ev.Timestamp.Format(time.StampMilli),
		FormatDelta(ev.DX), FormatDelta(ev.DY), FormatButtons(ev.Buttons))
}
