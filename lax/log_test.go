//go:build !avr

package lax

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

func withOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevSDB, prevTrace := Output, SDB, SDBTrace
	Output = &buf
	t.Cleanup(func() { Output, SDB, SDBTrace = prevOut, prevSDB, prevTrace })
	return &buf
}

func TestLogDisabled(t *testing.T) {
	buf := withOutput(t)
	SDB = false
	Log("open", []byte{1})
	if buf.Len() != 0 {
		t.Errorf("expected no output with SDB unset, got %q", buf.String())
	}
}

func TestLogData(t *testing.T) {
	buf := withOutput(t)
	SDB = true
	Log("read", []byte{0xca, 0xfe}, []byte{0x01})
	if want := "dbgmon:read 0xCAFE 0x01\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogTraceOnly(t *testing.T) {
	buf := withOutput(t)
	SDB, SDBTrace = true, true
	Log("read", []byte{0xca, 0xfe})
	if want := "dbgmon:read\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestIsEOF(t *testing.T) {
	if !IsEOF(io.EOF) || !IsEOF(fmt.Errorf("port: %w", io.EOF)) {
		t.Error("expected EOF to be detected")
	}
	if IsEOF(nil) || IsEOF(io.ErrUnexpectedEOF) {
		t.Error("false EOF positive")
	}
}
