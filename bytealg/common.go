package bytealg

// MaxDec32 is the number of decimal digits needed for any uint32.
const MaxDec32 = 10

// Utoa writes the decimal representation of val to the tail of buf
// and returns the written portion. No leading zeros are written and
// the heap is not touched. buf must hold at least MaxDec32 bytes
// or Utoa panics for large values.
func Utoa(buf []byte, val uint32) []byte {
	i := len(buf) - 1
	for val >= 10 {
		q := val / 10
		buf[i] = byte('0' + val - q*10)
		i--
		val = q
	}
	buf[i] = byte('0' + val)
	return buf[i:]
}
