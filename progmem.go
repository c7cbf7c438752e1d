package dbgprint

// progmemByte returns byte i of s. Every literal read goes through here.
// TinyGo places string constants in .rodata, which is flash on the ARM
// and RISC-V targets and addressable like RAM. On AVR the linker copies
// .rodata into RAM at reset, so an ordinary load reads that copy.
func progmemByte(s Flash, i int) byte {
	return s[i]
}
