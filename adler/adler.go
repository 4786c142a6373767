package adler

import (
	"context"

	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/view"
)

// nmax is the largest number of bytes that can be summed before the modulo
// reduction without overflowing the 32-bit form of the accumulators.
const nmax = 5552

type variant struct {
	name    string
	code    uint64
	modulus uint64
	bits    int
}

var variants = map[Type]variant{
	Adler16: {"adler-16", Adler16Code, 251, 16},
	Adler32: {"adler-32", Adler32Code, 65521, 32},
	Adler64: {"adler-64", Adler64Code, 4294967291, 64},
}

type function struct {
	variant
	bigEndian bool
}

func (f function) Code() uint64 {
	return f.code
}

func (f function) Name() string {
	return f.name
}

func (f function) Size() int {
	return f.bits
}

func (f function) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}

	a, b := uint64(1), uint64(0)
	rest := data.Bytes()
	for len(rest) > 0 {
		n := min(len(rest), nmax)
		for _, x := range rest[:n] {
			a += uint64(x)
			b += a
		}
		a %= f.modulus
		b %= f.modulus
		rest = rest[n:]

		if len(rest) > 0 {
			if err := hash.Checkpoint(ctx); err != nil {
				return nil, err
			}
		}
	}

	sum := b<<(f.bits/2) | a
	size := f.bits / 8
	digest := make([]byte, size)
	for i := 0; i < size; i++ {
		shift := 8 * i
		if f.bigEndian {
			shift = 8 * (size - 1 - i)
		}
		digest[i] = byte(sum >> shift)
	}
	return value.New(f.code, digest, f.bits), nil
}
