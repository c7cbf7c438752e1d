package dbgprint

// Flash is a read-only string literal. Declare Flash values as constants
// so the compiler keeps them in the read-only data section, which is flash
// on targets where flash is memory mapped:
//
//	const hello dbgprint.Flash = "hello\r\n"
//
// A Flash ends at its first NUL byte, if any. On AVR TinyGo copies the
// read-only data section to RAM at startup, so literals still cost RAM there.
type Flash string

// F tags the string constant s as a Flash literal.
//
//go:inline
func F(s string) Flash { return Flash(s) }

// PrintLiteral prints the bytes of s up to the first NUL. The NUL
// itself is not printed.
func PrintLiteral(s Flash) {
	for i := 0; i < len(s); i++ {
		c := progmemByte(s, i)
		if c == 0 {
			return
		}
		sink.WriteByte(c)
	}
}

// PrintF prints s regardless of the debug tag.
func PrintF(s Flash) {
	PrintLiteral(s)
}
