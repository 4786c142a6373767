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
	prime64x1 uint64 = 11400714785074694791
	prime64x2 uint64 = 14029467366897019727
	prime64x3 uint64 = 1609587929392839161
	prime64x4 uint64 = 9650029242287828579
	prime64x5 uint64 = 2870177450012600261
)

func round64(acc, input uint64) uint64 {
	acc += input * prime64x2
	acc = bits.RotateLeft64(acc, 31)
	return acc * prime64x1
}

func mergeRound64(acc, val uint64) uint64 {
	acc ^= round64(0, val)
	return acc*prime64x1 + prime64x4
}

type xxh64 struct {
	seed uint64
}

func (xxh64) Code() uint64 { return XXHash64Code }
func (xxh64) Name() string { return "xxhash-64" }
func (xxh64) Size() int    { return 64 }

func (f xxh64) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	b := data.Bytes()
	n := len(b)

	var h uint64
	if n >= 32 {
		v1 := f.seed + prime64x1 + prime64x2
		v2 := f.seed + prime64x2
		v3 := f.seed
		v4 := f.seed - prime64x1

		stripes := n / 32
		for i := 0; i < stripes; i++ {
			if i > 0 && i%hash.CheckInterval == 0 {
				if err := hash.Checkpoint(ctx); err != nil {
					return nil, err
				}
			}
			s := b[i*32:]
			v1 = round64(v1, binary.LittleEndian.Uint64(s[0:]))
			v2 = round64(v2, binary.LittleEndian.Uint64(s[8:]))
			v3 = round64(v3, binary.LittleEndian.Uint64(s[16:]))
			v4 = round64(v4, binary.LittleEndian.Uint64(s[24:]))
		}
		b = b[stripes*32:]

		h = bits.RotateLeft64(v1, 1) + bits.RotateLeft64(v2, 7) +
			bits.RotateLeft64(v3, 12) + bits.RotateLeft64(v4, 18)
		h = mergeRound64(h, v1)
		h = mergeRound64(h, v2)
		h = mergeRound64(h, v3)
		h = mergeRound64(h, v4)
	} else {
		h = f.seed + prime64x5
	}
	h += uint64(n)

	for ; len(b) >= 8; b = b[8:] {
		h ^= round64(0, binary.LittleEndian.Uint64(b))
		h = bits.RotateLeft64(h, 27)*prime64x1 + prime64x4
	}
	if len(b) >= 4 {
		h ^= uint64(binary.LittleEndian.Uint32(b)) * prime64x1
		h = bits.RotateLeft64(h, 23)*prime64x2 + prime64x3
		b = b[4:]
	}
	for _, c := range b {
		h ^= uint64(c) * prime64x5
		h = bits.RotateLeft64(h, 11) * prime64x1
	}

	h ^= h >> 33
	h *= prime64x2
	h ^= h >> 29
	h *= prime64x3
	h ^= h >> 32

	return value.New(XXHash64Code, binary.LittleEndian.AppendUint64(nil, h), 64), nil
}
