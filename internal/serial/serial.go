// Package serial opens a host serial port for reading a board's
// diagnostic channel.
package serial

import "errors"

var (
	ErrUnsupportedBaud     = errors.New("serial: unsupported baud rate")
	ErrUnsupportedPlatform = errors.New("serial: termios not available on this platform")
)
