package lax

import "github.com/soypat/dbgprint/hex"

// Serial Debug flag. Enables printing of log
var (
	SDB bool
	// When SDB and SDBTrace are enabled only string message is printed.
	SDBTrace bool
)

// Log prints a trace line prefixed with "dbgmon:" when SDB is set.
// Datas are logged as hex string.
func Log(msg string, datas ...[]byte) {
	if !SDB {
		return
	}
	logString(Strcat("dbgmon:", msg))
	if !SDBTrace {
		for d := range datas {
			logString(" 0x")
			logString(string(hex.Bytes(datas[d])))
		}
	}
	logString("\n")
}

// local string concatenation primitive which
// can be replaced with a no-heap version for weeding
// out heap allocations in this package.
func Strcat(s ...string) (out string) {
	for i := range s {
		out += s[i]
	}
	return out
}
