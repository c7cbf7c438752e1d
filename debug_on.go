//go:build debug

package dbgprint

// Enabled is true if we were built with the "debug" build tag.
const Enabled = true

// DebugF prints s. Compiled out without the debug tag.
func DebugF(s Flash) { PrintLiteral(s) }

// DebugChar writes the raw byte c. Compiled out without the debug tag.
func DebugChar(c byte) { WriteChar(c) }

// DebugDec8 prints v in decimal. Compiled out without the debug tag.
func DebugDec8(v uint8) { PrintDec8(v) }

// DebugDec16 prints v in decimal. Compiled out without the debug tag.
func DebugDec16(v uint16) { PrintDec16(v) }

// DebugHex8 prints v as two hex digits. Compiled out without the debug tag.
func DebugHex8(v uint8) { PrintHex8(v) }

// DebugHex16 prints v as four hex digits. Compiled out without the debug tag.
func DebugHex16(v uint16) { PrintHex16(v) }

// DebugFreeRAM prints the free RAM count. Compiled out without the debug tag.
func DebugFreeRAM() { DisplayFreeRAM() }
