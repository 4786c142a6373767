package xxhash

import (
	"context"
	"encoding/binary"
	"math/bits"

	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/view"
)

const (
	prime32x1 uint32 = 2654435761
	prime32x2 uint32 = 2246822519
	prime32x3 uint32 = 3266489917
	prime32x4 uint32 = 668265263
	prime32x5 uint32 = 374761393
)

func round32(acc, input uint32) uint32 {
	acc += input * prime32x2
	acc = bits.RotateLeft32(acc, 13)
	return acc * prime32x1
}

type xxh32 struct {
	seed uint32
}

func (xxh32) Code() uint64 { return XXHash32Code }
func (xxh32) Name() string { return "xxhash-32" }
func (xxh32) Size() int    { return 32 }

func (f xxh32) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	b := data.Bytes()
	n := len(b)

	var h uint32
	if n >= 16 {
		v1 := f.seed + prime32x1 + prime32x2
		v2 := f.seed + prime32x2
		v3 := f.seed
		v4 := f.seed - prime32x1

		stripes := n / 16
		for i := 0; i < stripes; i++ {
			if i > 0 && i%hash.CheckInterval == 0 {
				if err := hash.Checkpoint(ctx); err != nil {
					return nil, err
				}
			}
			s := b[i*16:]
			v1 = round32(v1, binary.LittleEndian.Uint32(s[0:]))
			v2 = round32(v2, binary.LittleEndian.Uint32(s[4:]))
			v3 = round32(v3, binary.LittleEndian.Uint32(s[8:]))
			v4 = round32(v4, binary.LittleEndian.Uint32(s[12:]))
		}
		b = b[stripes*16:]

		h = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
	} else {
		h = f.seed + prime32x5
	}
	h += uint32(n)

	for ; len(b) >= 4; b = b[4:] {
		h += binary.LittleEndian.Uint32(b) * prime32x3
		h = bits.RotateLeft32(h, 17) * prime32x4
	}
	for _, c := range b {
		h += uint32(c) * prime32x5
		h = bits.RotateLeft32(h, 11) * prime32x1
	}

	h ^= h >> 15
	h *= prime32x2
	h ^= h >> 13
	h *= prime32x3
	h ^= h >> 16

	return value.New(XXHash32Code, binary.LittleEndian.AppendUint32(nil, h), 32), nil
}
