package dbgprint

import (
	"bytes"
	"testing"
)

// capture redirects output to a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Sink()
	SetSink(&buf)
	t.Cleanup(func() { SetSink(prev) })
	return &buf
}

func setMemProbe(t *testing.T, probe func() uint64) {
	t.Helper()
	prev := memProbe
	memProbe = probe
	t.Cleanup(func() { memProbe = prev })
}
