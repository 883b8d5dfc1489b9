package ttyport

import (
	"golang.org/x/sys/unix"

	"github.com/allbin/go-msmouse"
)

// baudCodes maps the classic RS-232 rates to their termios constants. The
// mouse protocol only ever asks for 1200, but a probe snapshot has to
// round-trip whatever rate the port happened to be at.
var baudCodes = map[uint32]uint32{
	50:     unix.B50,
	75:     unix.B75,
	110:    unix.B110,
	134:    unix.B134,
	150:    unix.B150,
	200:    unix.B200,
	300:    unix.B300,
	600:    unix.B600,
	1200:   unix.B1200,
	1800:   unix.B1800,
	2400:   unix.B2400,
	4800:   unix.B4800,
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
}

// baudToCode converts a baud rate in bits per second to the termios speed
// constant.
func baudToCode(rate uint32) (uint32, bool) {
	code, ok := baudCodes[rate]
	return code, ok
}

// codeToBaud converts a termios speed constant back to bits per second.
func codeToBaud(code uint32) (uint32, bool) {
	for rate, c := range baudCodes {
		if c == code {
			return rate, true
		}
	}
	return 0, false
}

// dataBitsToCSIZE converts a data-bit count to the termios CSIZE bits.
func dataBitsToCSIZE(bits uint32) (uint32, bool) {
	switch bits {
	case 5:
		return unix.CS5, true
	case 6:
		return unix.CS6, true
	case 7:
		return unix.CS7, true
	case 8:
		return unix.CS8, true
	default:
		return 0, false
	}
}

// csizeToDataBits converts the CSIZE field of a termios Cflag back to a
// data-bit count.
func csizeToDataBits(cflag uint32) uint32 {
	switch cflag & unix.CSIZE {
	case unix.CS5:
		return 5
	case unix.CS6:
		return 6
	case unix.CS7:
		return 7
	default:
		return 8
	}
}

// flowToTIOCM converts a driver flow-control mask to TIOCM modem bits.
func flowToTIOCM(flow msmouse.FlowControl) int {
	var bits int
	if flow&msmouse.FlowRTS != 0 {
		bits |= unix.TIOCM_RTS
	}
	if flow&msmouse.FlowDTR != 0 {
		bits |= unix.TIOCM_DTR
	}
	return bits
}

// tiocmToFlow converts TIOCM modem bits to a driver flow-control mask.
func tiocmToFlow(status int) msmouse.FlowControl {
	var flow msmouse.FlowControl
	if status&unix.TIOCM_RTS != 0 {
		flow |= msmouse.FlowRTS
	}
	if status&unix.TIOCM_DTR != 0 {
		flow |= msmouse.FlowDTR
	}
	return flow
}
