package msmouse

import "testing"

func TestDecodePacket(t *testing.T) {
	tests := []struct {
		name        string
		packet      []byte
		wantOK      bool
		wantDX      int8
		wantDY      int8
		wantButtons ButtonMask
	}{
		{
			name:   "no movement, no buttons",
			packet: []byte{0x40, 0x00, 0x00},
			wantOK: true,
		},
		{
			// 0x4B: header set, buttons clear, Y high bits 10, X high bits 11.
			// X = 0xC0|0x23 = 0xE3 = -29, Y = 0x80|0x15 = 0x95 = -107.
			name:   "negative deltas from high bits",
			packet: []byte{0x4B, 0x23, 0x15},
			wantOK: true,
			wantDX: -29,
			wantDY: -107,
		},
		{
			name:        "left button",
			packet:      []byte{0x60, 0x00, 0x00},
			wantOK:      true,
			wantButtons: ButtonLeft,
		},
		{
			name:        "right button",
			packet:      []byte{0x50, 0x00, 0x00},
			wantOK:      true,
			wantButtons: ButtonRight,
		},
		{
			name:        "both buttons with movement",
			packet:      []byte{0x70, 0x01, 0x3F},
			wantOK:      true,
			wantDX:      1,
			wantDY:      63,
			wantButtons: ButtonLeft | ButtonRight,
		},
		{
			name:   "reserved bit 7 ignored",
			packet: []byte{0xC0, 0x02, 0x03},
			wantOK: true,
			wantDX: 2,
			wantDY: 3,
		},
		{
			name:   "framing bit clear",
			packet: []byte{0x00, 0x23, 0x15},
			wantOK: false,
		},
		{
			name:   "too short",
			packet: []byte{0x40, 0x00},
			wantOK: false,
		},
		{
			name:   "too long",
			packet: []byte{0x40, 0x00, 0x00, 0x00},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := DecodePacket(tt.packet)
			if ok != tt.wantOK {
				t.Fatalf("DecodePacket(% X) ok = %v, want %v", tt.packet, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if ev.DX != tt.wantDX {
				t.Errorf("DX = %d, want %d", ev.DX, tt.wantDX)
			}
			if ev.DY != tt.wantDY {
				t.Errorf("DY = %d, want %d", ev.DY, tt.wantDY)
			}
			if ev.Buttons != tt.wantButtons {
				t.Errorf("Buttons = %v, want %v", ev.Buttons, tt.wantButtons)
			}
		})
	}
}

// Every first byte with the framing bit clear must decode to nothing,
// whatever the rest of the packet contains.
func TestDecodePacketRejectsAllUnframedBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		if b&0x40 != 0 {
			continue
		}
		packet := []byte{byte(b), 0x2A, 0x15}
		if _, ok := DecodePacket(packet); ok {
			t.Errorf("DecodePacket(% X) accepted packet with framing bit clear", packet)
		}
	}
}

func TestButtonMaskString(t *testing.T) {
	tests := []struct {
		mask ButtonMask
		want string
	}{
		{0, "none"},
		{ButtonLeft, "left"},
		{ButtonRight, "right"},
		{ButtonLeft | ButtonRight, "left+right"},
	}
	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("ButtonMask(%d).String() = %q, want %q", tt.mask, got, tt.want)
		}
	}
}
