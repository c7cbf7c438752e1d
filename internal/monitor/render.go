// Package monitor renders the raw bytes of a diagnostic serial channel
// for display on a terminal.
package monitor

import (
	"context"
	"io"

	"github.com/soypat/dbgprint/hex"
	"github.com/soypat/dbgprint/lax"
)

// Renderer is an io.Writer that forwards channel bytes to a terminal.
// In hex mode bytes that would upset a terminal are shown as <XX>.
type Renderer struct {
	w       io.Writer
	hexMode bool
	buf     []byte
}

func NewRenderer(w io.Writer, hexMode bool) *Renderer {
	return &Renderer{w: w, hexMode: hexMode}
}

// Write renders p. The returned count refers to bytes of p consumed.
func (r *Renderer) Write(p []byte) (int, error) {
	if !r.hexMode {
		return r.w.Write(p)
	}
	r.buf = r.buf[:0]
	for _, c := range p {
		if printable(c) {
			r.buf = append(r.buf, c)
			continue
		}
		d := hex.Byte(c)
		r.buf = append(r.buf, '<', d[0], d[1], '>')
	}
	if _, err := r.w.Write(r.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

func printable(c byte) bool {
	return c >= 0x20 && c < 0x7f || c == '\n' || c == '\r' || c == '\t'
}

// Copy streams src into r until src is exhausted or ctx is cancelled.
// Reaching EOF or cancellation is not an error. Callers must unblock a
// pending Read on cancellation, typically by closing src.
func Copy(ctx context.Context, r *Renderer, src io.Reader) error {
	var buf [256]byte
	for {
		n, err := src.Read(buf[:])
		if n > 0 {
			lax.Log("read", buf[:n])
			if _, werr := r.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		switch {
		case err == nil:
		case lax.IsEOF(err), ctx.Err() != nil:
			lax.Log("stream end")
			return nil
		default:
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
