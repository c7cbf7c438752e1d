//go:build !tinygo

package dbgprint

import "runtime"

// freeMemory reports heap memory the Go runtime holds but has not handed
// out nor returned to the OS. There is no fixed stack-to-heap gap on a
// hosted system so this is the closest equivalent.
func freeMemory() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapIdle - ms.HeapReleased
}
