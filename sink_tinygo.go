//go:build tinygo

package dbgprint

import (
	"io"
	"machine"
)

// machine.Serial is configured by the runtime before main runs.
func defaultSink() io.ByteWriter {
	return machine.Serial
}
