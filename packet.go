package msmouse

import "time"

// PacketLength is the size of one Microsoft serial mouse packet.
const PacketLength = 3

// Packet bit layout (MSB to LSB, x = don't care):
//
//	byte 0: x 1 LB RB Y7 Y6 X7 X6
//	byte 1: x 0 X5 X4 X3 X2 X1 X0
//	byte 2: x 0 Y5 Y4 Y3 Y2 Y1 Y0
//
// Bit 6 of the first byte is the only framing signal the protocol has;
// there is no length prefix or checksum.
const (
	packetHeaderBit = 0x40
	packetLeftBit   = 0x20
	packetRightBit  = 0x10
)

// ButtonMask is a bitset of pressed mouse buttons.
type ButtonMask uint8

const (
	ButtonLeft ButtonMask = 1 << iota
	ButtonRight
)

func (b ButtonMask) String() string {
	switch {
	case b&ButtonLeft != 0 && b&ButtonRight != 0:
		return "left+right"
	case b&ButtonLeft != 0:
		return "left"
	case b&ButtonRight != 0:
		return "right"
	default:
		return "none"
	}
}

// Event is one decoded relative pointer movement. Deltas are signed 8-bit
// values; the timestamp is taken at decode time from the monotonic clock.
type Event struct {
	DX        int8
	DY        int8
	Buttons   ButtonMask
	Timestamp time.Time
}

// DecodePacket decodes a 3-byte mouse packet. It reports ok=false when the
// packet is not exactly PacketLength bytes or its framing bit is clear; a
// clear framing bit means the byte stream is misaligned and the caller
// must flush the receive buffer to resynchronize.
func DecodePacket(packet []byte) (Event, bool) {
	if len(packet) != PacketLength || packet[0]&packetHeaderBit == 0 {
		return Event{}, false
	}

	ev := Event{
		DX: int8((packet[1] & 0x3F) | ((packet[0] & 0x03) << 6)),
		DY: int8((packet[2] & 0x3F) | ((packet[0] & 0x0C) << 4)),
	}
	if packet[0]&packetLeftBit != 0 {
		ev.Buttons |= ButtonLeft
	}
	if packet[0]&packetRightBit != 0 {
		ev.Buttons |= ButtonRight
	}
	return ev, true
}
