package dbgprint

import "io"

var sink io.ByteWriter = defaultSink()

// SetSink sets the byte sink all output is written to. A nil w discards output.
// SetSink is not safe to call concurrently with printing.
func SetSink(w io.ByteWriter) {
	if w == nil {
		w = discard{}
	}
	sink = w
}

// Sink returns the current output sink.
func Sink() io.ByteWriter { return sink }

// WriteChar writes the raw byte c to the sink.
func WriteChar(c byte) {
	sink.WriteByte(c)
}

func writeBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		sink.WriteByte(b[i])
	}
}

type discard struct{}

func (discard) WriteByte(byte) error { return nil }
