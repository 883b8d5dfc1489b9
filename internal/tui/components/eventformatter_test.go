package components

import (
	"strings"
	"testing"
	"time"

	"github.com/allbin/go-msmouse"
)

func TestFormatButtons(t *testing.T) {
	tests := []struct {
		name     string
		buttons  msmouse.ButtonMask
		expected string
	}{
		{name: "none", buttons: 0, expected: "-"},
		{name: "left", buttons: msmouse.ButtonLeft, expected: "L"},
		{name: "right", buttons: msmouse.ButtonRight, expected: "R"},
		{name: "both", buttons: msmouse.ButtonLeft | msmouse.ButtonRight, expected: "L+R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatButtons(tt.buttons); got != tt.expected {
				t.Errorf("FormatButtons(%v) = %q, want %q", tt.buttons, got, tt.expected)
			}
		})
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(5); got != "+5" {
		t.Errorf("FormatDelta(5) = %q, want %q", got, "+5")
	}
	if got := FormatDelta(-29); got != "-29" {
		t.Errorf("FormatDelta(-29) = %q, want %q", got, "-29")
	}
	if got := FormatDelta(0); got != "+0" {
		t.Errorf("FormatDelta(0) = %q, want %q", got, "+0")
	}
}

func TestFormatEventPlain(t *testing.T) {
	ev := msmouse.Event{
		DX:        5,
		DY:        -3,
		Buttons:   msmouse.ButtonLeft,
		Timestamp: time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC),
	}

	line := FormatEventPlain(ev)
	for _, want := range []string{"dx=+5", "dy=-3", "buttons=L", "12:30:45"} {
		if !strings.Contains(line, want) {
			t.Errorf("FormatEventPlain(%+v) = %q, missing %q", ev, line, want)
		}
	}
}
