//go:build !tinygo

package dbgprint

import (
	"bytes"
	"testing"
)

func TestWriterSink(t *testing.T) {
	var out bytes.Buffer
	prev := Sink()
	SetSink(WriterSink(&out))
	t.Cleanup(func() { SetSink(prev) })
	PrintF("ram=")
	setMemProbe(t, func() uint64 { return 2048 })
	DisplayFreeRAM()
	WriteChar('\n')
	if out.String() != "ram=2048\n" {
		t.Errorf("got %q", out.String())
	}
}
