package ttyport

import "errors"

// Predefined error types for robust error handling
var (
	ErrClosed          = errors.New("serial port is closed")
	ErrInvalidBaudRate = errors.New("invalid baud rate")
	ErrInvalidDataBits = errors.New("invalid data bits")
	ErrInvalidStopBits = errors.New("invalid stop bits")
)
