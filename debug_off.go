//go:build !debug

package dbgprint

// Enabled is true if we were built with the "debug" build tag.
const Enabled = false

// DebugF prints s. Compiled out without the debug tag.
func DebugF(s Flash) {}

// DebugChar writes the raw byte c. Compiled out without the debug tag.
func DebugChar(c byte) {}

// DebugDec8 prints v in decimal. Compiled out without the debug tag.
func DebugDec8(v uint8) {}

// DebugDec16 prints v in decimal. Compiled out without the debug tag.
func DebugDec16(v uint16) {}

// DebugHex8 prints v as two hex digits. Compiled out without the debug tag.
func DebugHex8(v uint8) {}

// DebugHex16 prints v as four hex digits. Compiled out without the debug tag.
func DebugHex16(v uint16) {}

// DebugFreeRAM prints the free RAM count. Compiled out without the debug tag.
func DebugFreeRAM() {}
