// Package msmouse implements the Microsoft Serial Mouse protocol on top of
// an RS-232 transport: device identification, port configuration, packet
// decoding and the polling loop that turns the byte stream into relative
// pointer events.
//
// The driver core is transport-agnostic. Anything that satisfies the
// Transport interface can carry it; the ttyport sub-package provides a
// Linux termios implementation for real serial devices.
//
// # Basic Usage
//
// Probe for a mouse without disturbing the port, then start polling:
//
//	port, err := ttyport.Open("/dev/ttyS0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	mouse := msmouse.New(port, msmouse.EventSinkFunc(func(ev msmouse.Event) {
//	    fmt.Printf("dx=%d dy=%d buttons=%s\n", ev.DX, ev.DY, ev.Buttons)
//	}))
//
//	if !mouse.Probe() {
//	    log.Fatal("no serial mouse attached")
//	}
//	if err := mouse.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer mouse.Stop()
//
// Probe is side-effect free: it saves the current port settings, runs the
// identification handshake and restores the settings before releasing the
// port, so other consumers of the transport see it exactly as it was.
// Start commits the port permanently and spawns a background goroutine
// that decodes packets until Stop is called.
//
// # Wire Protocol
//
// The mouse talks at 1200 baud, 7 data bits, 1 stop bit, with RTS and DTR
// asserted. Toggling DTR low and back high makes a compliant device answer
// with the single byte 0x4D ('M') after a short settle delay; that byte is
// the whole identification handshake. Movement and button state arrive as
// 3-byte packets with a framing bit in the first byte (see DecodePacket).
//
// # Logging
//
// The driver is silent by default. Pass WithLogger to get structured
// detail about probe and lifecycle failures:
//
//	mouse := msmouse.New(port, sink, msmouse.WithLogger(logger))
//
// # Error Handling
//
// Identification failures distinguish "device answered the wrong byte"
// (ErrNotMouse) from transport-level failures, which are wrapped and
// propagated. Use errors.Is:
//
//	if _, err := msmouse.Identify(port); errors.Is(err, msmouse.ErrNotMouse) {
//	    // something is attached, but it is not our device
//	}
package msmouse
