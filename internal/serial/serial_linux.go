//go:build linux

package serial

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

var baudRates = map[int]uint32{
	1200:   unix.B1200,
	2400:   unix.B2400,
	4800:   unix.B4800,
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
}

// BaudFlag returns the termios speed constant for baud.
func BaudFlag(baud int) (uint32, error) {
	rate, ok := baudRates[baud]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBaud, baud)
	}
	return rate, nil
}

// Port is a tty in raw 8N1 mode.
type Port struct {
	f *os.File
}

// Open opens the tty at path and puts it in raw 8N1 mode at baud.
func Open(path string, baud int) (*Port, error) {
	rate, err := BaudFlag(baud)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := setRaw(int(f.Fd()), rate); err != nil {
		f.Close()
		return nil, fmt.Errorf("configuring %s: %w", path, err)
	}
	return &Port{f: f}, nil
}

func setRaw(fd int, rate uint32) error {
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("failed to get terminal state: %w", err)
	}
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB | unix.CSTOPB | unix.CBAUD
	t.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL | rate
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return unix.IoctlSetTermios(fd, unix.TCSETS, t)
}

func (p *Port) Read(b []byte) (int, error) { return p.f.Read(b) }

// Close closes the port, unblocking a pending Read.
func (p *Port) Close() error { return p.f.Close() }
