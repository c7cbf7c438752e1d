//go:build tinygo

package dbgprint

import "runtime"

// freeMemory reports the unused part of the heap region, which on TinyGo
// spans from the end of globals to the bottom of the stack.
func freeMemory() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapSys - ms.HeapInuse
}
