//go:build avr

package lax

import "time"

func IsEOF(err error) bool {
	if err != nil {
		return err.Error() == "EOF"
	}
	return false
}

func Spin() {
	time.Sleep(10 * time.Millisecond)
}

func logString(s string) {
	print(s)
}
