//go:build !tinygo

package dbgprint

import (
	"io"
	"os"
)

func defaultSink() io.ByteWriter {
	return WriterSink(os.Stderr)
}

// WriterSink adapts an io.Writer such as a host serial port
// to the byte sink interface. Each byte is a separate Write call.
func WriterSink(w io.Writer) io.ByteWriter {
	return &writerSink{w: w}
}

type writerSink struct {
	w   io.Writer
	buf [1]byte
}

func (s *writerSink) WriteByte(c byte) error {
	s.buf[0] = c
	_, err := s.w.Write(s.buf[:])
	return err
}
