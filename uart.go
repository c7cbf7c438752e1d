package dbgprint

import (
	"github.com/soypat/dbgprint/lax"
	"tinygo.org/x/drivers"
)

// UARTSink adapts a drivers.UART to the byte sink used by this package.
// WriteByte blocks until the UART accepts the byte.
type UARTSink struct {
	uart drivers.UART
	buf  [1]byte
}

func NewUARTSink(u drivers.UART) *UARTSink {
	return &UARTSink{uart: u}
}

// WriteByte writes c, spinning while the UART transmit buffer is full.
func (s *UARTSink) WriteByte(c byte) error {
	s.buf[0] = c
	for {
		n, err := s.uart.Write(s.buf[:])
		if err != nil {
			return err
		}
		if n == 1 {
			return nil
		}
		lax.Spin()
	}
}
