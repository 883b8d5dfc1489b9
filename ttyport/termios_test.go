package ttyport

import (
	"testing"

	"golang.org/x/sys/unix"

	"github.com/allbin/go-msmouse"
)

// TestBaudRoundTrip tests baud rate to termios code conversion both ways
func TestBaudRoundTrip(t *testing.T) {
	rates := []uint32{50, 300, 1200, 9600, 38400, 115200}

	for _, rate := range rates {
		code, ok := baudToCode(rate)
		if !ok {
			t.Errorf("baudToCode(%d) not supported", rate)
			continue
		}
		back, ok := codeToBaud(code)
		if !ok {
			t.Errorf("codeToBaud(%#x) not supported", code)
			continue
		}
		if back != rate {
			t.Errorf("round trip %d -> %#x -> %d", rate, code, back)
		}
	}
}

func TestBaudToCodeUnsupported(t *testing.T) {
	if _, ok := baudToCode(1201); ok {
		t.Error("baudToCode(1201) should not be supported")
	}
	if _, ok := baudToCode(0); ok {
		t.Error("baudToCode(0) should not be supported")
	}
}

func TestDataBitsConversion(t *testing.T) {
	tests := []struct {
		name  string
		bits  uint32
		csize uint32
		ok    bool
	}{
		{name: "5 bits", bits: 5, csize: unix.CS5, ok: true},
		{name: "6 bits", bits: 6, csize: unix.CS6, ok: true},
		{name: "7 bits", bits: 7, csize: unix.CS7, ok: true},
		{name: "8 bits", bits: 8, csize: unix.CS8, ok: true},
		{name: "9 bits", bits: 9, ok: false},
		{name: "0 bits", bits: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csize, ok := dataBitsToCSIZE(tt.bits)
			if ok != tt.ok {
				t.Fatalf("dataBitsToCSIZE(%d) ok = %v, want %v", tt.bits, ok, tt.ok)
			}
			if !ok {
				return
			}
			if csize != tt.csize {
				t.Errorf("dataBitsToCSIZE(%d) = %#x, want %#x", tt.bits, csize, tt.csize)
			}
			if back := csizeToDataBits(csize); back != tt.bits {
				t.Errorf("csizeToDataBits(%#x) = %d, want %d", csize, back, tt.bits)
			}
		})
	}
}

// TestFlowToTIOCM tests the flow-control mask conversion
func TestFlowToTIOCM(t *testing.T) {
	tests := []struct {
		name     string
		flow     msmouse.FlowControl
		expected int
	}{
		{
			name:     "RTS only",
			flow:     msmouse.FlowRTS,
			expected: unix.TIOCM_RTS,
		},
		{
			name:     "DTR only",
			flow:     msmouse.FlowDTR,
			expected: unix.TIOCM_DTR,
		},
		{
			name:     "RTS and DTR",
			flow:     msmouse.FlowRTS | msmouse.FlowDTR,
			expected: unix.TIOCM_RTS | unix.TIOCM_DTR,
		},
		{
			name:     "none",
			flow:     0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := flowToTIOCM(tt.flow)
			if result != tt.expected {
				t.Errorf("flowToTIOCM(%v) = %v, want %v", tt.flow, result, tt.expected)
			}
		})
	}
}

func TestTIOCMToFlow(t *testing.T) {
	// Unrelated modem bits must not leak into the flow mask
	status := unix.TIOCM_RTS | unix.TIOCM_DTR | unix.TIOCM_CTS | unix.TIOCM_CAR
	if flow := tiocmToFlow(status); flow != msmouse.FlowRTS|msmouse.FlowDTR {
		t.Errorf("tiocmToFlow(%#x) = %v, want %v", status, flow, msmouse.FlowRTS|msmouse.FlowDTR)
	}

	if flow := tiocmToFlow(unix.TIOCM_CTS); flow != 0 {
		t.Errorf("tiocmToFlow(CTS) = %v, want 0", flow)
	}
}
