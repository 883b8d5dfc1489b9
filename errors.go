package msmouse

import "errors"

// Predefined error types for robust error handling
var (
	ErrNotMouse       = errors.New("device did not identify as a serial mouse")
	ErrAlreadyStarted = errors.New("driver is already started")
	ErrPortHeld       = errors.New("serial port is already held")
	ErrShortRead      = errors.New("short read from transport")
	ErrUnknownSetting = errors.New("unknown port setting")
)
