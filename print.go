package dbgprint

import (
	"github.com/soypat/dbgprint/bytealg"
	"github.com/soypat/dbgprint/hex"
)

// PrintHex8 prints v as two uppercase hexadecimal digits.
func PrintHex8(v uint8) {
	d := hex.Byte(v)
	writeBytes(d[:])
}

// PrintHex16 prints v as four uppercase hexadecimal digits, high byte first.
func PrintHex16(v uint16) {
	d := hex.Word(v)
	writeBytes(d[:])
}

// PrintDec8 prints v in decimal without leading zeros.
func PrintDec8(v uint8) {
	PrintDec16(uint16(v))
}

// PrintDec16 prints v in decimal without leading zeros.
func PrintDec16(v uint16) {
	var buf [5]byte
	writeBytes(bytealg.Utoa(buf[:], uint32(v)))
}
