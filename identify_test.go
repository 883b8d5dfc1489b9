package msmouse

import (
	"errors"
	"reflect"
	"testing"
)

func TestIdentifySuccess(t *testing.T) {
	sim := newSimTransport()
	sim.respondToID = true
	sim.idResponse = idByte

	id, err := identify(sim, 0)
	if err != nil {
		t.Fatalf("identify failed: %v", err)
	}
	if id != 0x4D {
		t.Errorf("identification byte = 0x%02X, want 0x4D", id)
	}
}

// The handshake is a fixed sequence: flush, assert RTS+DTR, drop DTR with
// RTS still asserted, reassert both, then a single read. Order matters; a
// device triggers on the DTR edge.
func TestIdentifyToggleSequence(t *testing.T) {
	sim := newSimTransport()
	sim.respondToID = true
	sim.idResponse = idByte

	if _, err := identify(sim, 0); err != nil {
		t.Fatalf("identify failed: %v", err)
	}

	want := []string{
		"flush",
		"apply flow-control=3", // RTS|DTR
		"apply flow-control=1", // RTS only
		"apply flow-control=3", // RTS|DTR
	}
	if got := sim.opLog(); !reflect.DeepEqual(got, want) {
		t.Errorf("handshake op sequence = %v, want %v", got, want)
	}
}

func TestIdentifyWrongByte(t *testing.T) {
	sim := newSimTransport()
	sim.respondToID = true
	sim.idResponse = 0x33

	id, err := identify(sim, 0)
	if !errors.Is(err, ErrNotMouse) {
		t.Fatalf("identify error = %v, want ErrNotMouse", err)
	}
	if id != 0x33 {
		t.Errorf("identification byte = 0x%02X, want the byte the device sent", id)
	}
}

func TestIdentifyNoResponse(t *testing.T) {
	sim := newSimTransport()

	_, err := identify(sim, 0)
	if !errors.Is(err, ErrShortRead) {
		t.Fatalf("identify error = %v, want ErrShortRead", err)
	}
}

func TestIdentifyReadFailure(t *testing.T) {
	boom := errors.New("line broke")

	sim := newSimTransport()
	sim.readErr = boom

	_, err := identify(sim, 0)
	if !errors.Is(err, boom) {
		t.Fatalf("identify error = %v, want transport error", err)
	}
	if errors.Is(err, ErrNotMouse) {
		t.Error("transport failure must not be reported as an identity mismatch")
	}
}

func TestIdentifyFlushFailureAborts(t *testing.T) {
	boom := errors.New("flush failed")

	sim := newSimTransport()
	sim.flushErr = boom

	if _, err := identify(sim, 0); !errors.Is(err, boom) {
		t.Fatalf("identify error = %v, want %v", err, boom)
	}
	for _, op := range sim.opLog() {
		if op != "flush" {
			t.Errorf("operation after failed flush: %s", op)
		}
	}
}
