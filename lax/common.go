//go:build !avr

package lax

import (
	"errors"
	"io"
	"os"
	"time"
)

// Output receives Log lines.
var Output io.Writer = os.Stderr

func IsEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// Spin is a single busy-wait step for callers polling hardware.
func Spin() {
	time.Sleep(time.Microsecond)
}

func logString(s string) {
	io.WriteString(Output, s)
}
