package hex

const digits = "0123456789ABCDEF"

// Byte converts a single byte to its two digit uppercase
// ASCII representation. No heap allocation takes place.
//
// Example:
//  b := hex.Byte(0xff)
//  string(b[:])
//  Output: "FF"
func Byte(b byte) [2]byte {
	return [2]byte{digits[b>>4], digits[b&0b0000_1111]}
}

// Word converts a 16 bit value to four uppercase ASCII hex
// digits, most significant byte first.
func Word(v uint16) [4]byte {
	hi, lo := Byte(byte(v>>8)), Byte(byte(v))
	return [4]byte{hi[0], hi[1], lo[0], lo[1]}
}

// Bytes converts a binary slice of bytes to an ASCII
// hex representation.
//
// Example:
//  string(hex.Bytes([]byte{0xff,0xaa}))
//  Output: "FFAA"
func Bytes(b []byte) []byte {
	o := make([]byte, len(b)*2)
	for i := 0; i < len(b); i++ {
		aux := Byte(b[i])
		o[i*2] = aux[0]
		o[i*2+1] = aux[1]
	}
	return o
}

// Decode turns an ASCII represented hexadecimal string b to
// binary ignoring the non-hexa digits.
func Decode(b []byte) []byte {
	out := make([]byte, 0, len(b)/2)
	var ib int
	for i := range b {
		char := b[i]
		switch {
		case char >= 'A' && char <= 'F':
			char -= 'A' - 10
		case char >= 'a' && char <= 'f':
			char -= 'a' - 10
		case char >= '0' && char <= '9':
			char -= '0'
		default:
			continue
		}
		if ib%2 == 1 {
			out[ib/2] |= char
		} else {
			out = append(out, char<<4)
		}
		ib++
	}
	return out
}
