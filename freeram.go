package dbgprint

// memProbe returns the unused RAM in bytes.
var memProbe = freeMemory

// FreeRAM returns the amount of unused RAM in bytes, clamped to 65535.
// How it is measured depends on the target, see freeMemory.
func FreeRAM() uint16 {
	free := memProbe()
	if free > 0xffff {
		return 0xffff
	}
	return uint16(free)
}

// DisplayFreeRAM prints FreeRAM in decimal.
func DisplayFreeRAM() {
	PrintDec16(FreeRAM())
}
