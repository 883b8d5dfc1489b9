package msmouse

import (
	"errors"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		settings PortSettings
	}{
		{"mouse protocol", MouseSettings()},
		{"typical modem", PortSettings{DataRate: 9600, DataSize: 8, StopBits: 1, FlowControl: FlowRTS}},
		{"everything off", PortSettings{DataRate: 300, DataSize: 5, StopBits: 2, FlowControl: 0}},
		{"both lines", PortSettings{DataRate: 19200, DataSize: 7, StopBits: 1, FlowControl: FlowRTS | FlowDTR}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newSimTransport()

			if err := tt.settings.Apply(sim); err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			got, err := ReadSettings(sim)
			if err != nil {
				t.Fatalf("ReadSettings failed: %v", err)
			}
			if got != tt.settings {
				t.Errorf("round trip = %+v, want %+v", got, tt.settings)
			}
		})
	}
}

func TestApplyFailsFastInOrder(t *testing.T) {
	// A rejected field must abort the remaining writes, leaving later
	// fields untouched.
	boom := errors.New("rejected")

	sim := newSimTransport()
	sim.applyErr[SettingStopBits] = boom
	initial := sim.snapshot()

	err := MouseSettings().Apply(sim)
	if !errors.Is(err, boom) {
		t.Fatalf("Apply error = %v, want %v", err, boom)
	}

	after := sim.snapshot()
	if after[SettingDataRate] != mouseDataRate || after[SettingDataSize] != mouseDataSize {
		t.Error("fields before the failure were not applied")
	}
	if after[SettingStopBits] != initial[SettingStopBits] {
		t.Error("rejected field was modified")
	}
	if after[SettingFlowControl] != initial[SettingFlowControl] {
		t.Error("field after the failure was modified")
	}
}

func TestReadSettingsFailsFast(t *testing.T) {
	boom := errors.New("unreadable")

	sim := newSimTransport()
	sim.requestErr[SettingDataSize] = boom

	if _, err := ReadSettings(sim); !errors.Is(err, boom) {
		t.Fatalf("ReadSettings error = %v, want %v", err, boom)
	}

	// Only the field before the failure may have been requested.
	for _, op := range sim.opLog() {
		if op == "request stop-bits" || op == "request flow-control" {
			t.Errorf("field after failure was read: %s", op)
		}
	}
}

func TestMouseSettings(t *testing.T) {
	s := MouseSettings()
	if s.DataRate != 1200 || s.DataSize != 7 || s.StopBits != 1 {
		t.Errorf("unexpected transport framing: %+v", s)
	}
	if s.FlowControl != FlowRTS|FlowDTR {
		t.Errorf("FlowControl = %v, want RTS|DTR", s.FlowControl)
	}
}
