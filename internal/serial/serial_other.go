//go:build !linux

package serial

import "io"

type Port struct {
	io.ReadCloser
}

func BaudFlag(baud int) (uint32, error) {
	return 0, ErrUnsupportedPlatform
}

func Open(path string, baud int) (*Port, error) {
	return nil, ErrUnsupportedPlatform
}
