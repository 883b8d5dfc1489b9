package msmouse

import (
	"fmt"
	"time"
)

const (
	// idByte is the identification byte a compliant device emits after the
	// DTR toggle: ASCII 'M' for "Microsoft".
	idByte = 0x4D

	// idSettleDelay is how long the device is given to respond after the
	// toggle before the identification byte is read.
	idSettleDelay = 100 * time.Millisecond
)

// Identify runs the power-on identification handshake on an acquired and
// configured transport: flush stale input, toggle DTR low and back high
// with both control lines otherwise asserted, wait for the device to
// settle, then read and verify the single identification byte.
//
// The returned byte is whatever the device answered, also on mismatch. A
// wrong byte is reported as ErrNotMouse, distinct from transport-level
// failures; callers must not take a non-nil byte alone as proof a mouse
// is present.
func Identify(t Transport) (byte, error) {
	return identify(t, idSettleDelay)
}

func identify(t Transport, settle time.Duration) (byte, error) {
	if err := t.Flush(); err != nil {
		return 0, fmt.Errorf("flushing receive buffer: %w", err)
	}

	// DTR toggle. Dropping DTR while RTS stays asserted is the documented
	// trigger for the identification response.
	if err := t.ApplySetting(SettingFlowControl, uint32(mouseFlow)); err != nil {
		return 0, fmt.Errorf("asserting control lines: %w", err)
	}
	if err := t.ApplySetting(SettingFlowControl, uint32(mouseFlow&^FlowDTR)); err != nil {
		return 0, fmt.Errorf("dropping DTR: %w", err)
	}
	if err := t.ApplySetting(SettingFlowControl, uint32(mouseFlow)); err != nil {
		return 0, fmt.Errorf("reasserting control lines: %w", err)
	}

	time.Sleep(settle)

	var id [1]byte
	n, err := t.Read(id[:])
	if err != nil {
		return 0, fmt.Errorf("reading identification byte: %w", err)
	}
	if n != 1 {
		return 0, ErrShortRead
	}
	if id[0] != idByte {
		return id[0], fmt.Errorf("%w: got 0x%02X, want 0x%02X", ErrNotMouse, id[0], idByte)
	}
	return id[0], nil
}
