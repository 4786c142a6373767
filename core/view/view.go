package view

import (
	"fmt"

	"github.com/storacha/go-hashfn/core/failure"
	"golang.org/x/text/encoding"
)

// View is a read-only window onto a borrowed byte buffer. The buffer is never
// copied; callers must not mutate it while the view is in use.
type View struct {
	buf    []byte
	offset int
	length int
}

// New creates a view of length bytes of buf starting at offset.
func New(buf []byte, offset, length int) (View, error) {
	if offset < 0 || offset > len(buf) {
		return View{}, failure.NewRangeError("offset", "must be between 0 and %d, got %d", len(buf), offset)
	}
	if length < 0 || length > len(buf)-offset {
		return View{}, failure.NewRangeError("length", "must be between 0 and %d, got %d", len(buf)-offset, length)
	}
	return View{buf: buf, offset: offset, length: length}, nil
}

// Of creates a view of the whole of buf.
func Of(buf []byte) View {
	return View{buf: buf, length: len(buf)}
}

// FromString creates a view of the UTF-8 bytes of s.
func FromString(s string) View {
	return Of([]byte(s))
}

// FromText creates a view of s encoded with enc. A nil encoding means UTF-8.
func FromText(s string, enc encoding.Encoding) (View, error) {
	if enc == nil {
		return FromString(s), nil
	}
	b, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return View{}, fmt.Errorf("encoding text: %w", err)
	}
	return Of(b), nil
}

// Bytes returns the viewed bytes. The returned slice aliases the buffer.
func (v View) Bytes() []byte {
	return v.buf[v.offset : v.offset+v.length : v.offset+v.length]
}

func (v View) Offset() int {
	return v.offset
}

func (v View) Len() int {
	return v.length
}
