package murmur

import (
	"context"
	"encoding/binary"

	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/view"
)

const (
	mix2x32 uint32 = 0x5bd1e995
	r2x32          = 24

	mix2x64 uint64 = 0xc6a4a7935bd1e995
	r2x64          = 47
)

type murmur2x32 struct {
	seed uint32
}

func (murmur2x32) Code() uint64 { return Murmur2Bit32Code }
func (murmur2x32) Name() string { return "murmur2-32" }
func (murmur2x32) Size() int    { return 32 }

func (f murmur2x32) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	b := data.Bytes()
	n := len(b)
	h := f.seed ^ uint32(n)

	groups := n / 4
	for i := 0; i < groups; i++ {
		if i > 0 && i%hash.CheckInterval == 0 {
			if err := hash.Checkpoint(ctx); err != nil {
				return nil, err
			}
		}
		k := binary.LittleEndian.Uint32(b[i*4:])
		k *= mix2x32
		k ^= k >> r2x32
		k *= mix2x32

		h *= mix2x32
		h ^= k
	}

	tail := b[groups*4:]
	switch len(tail) {
	case 3:
		h ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(tail[0])
		h *= mix2x32
	}

	h ^= h >> 13
	h *= mix2x32
	h ^= h >> 15

	return value.New(Murmur2Bit32Code, binary.LittleEndian.AppendUint32(nil, h), 32), nil
}

// murmur2x64 is MurmurHash64A.
type murmur2x64 struct {
	seed uint64
}

func (murmur2x64) Code() uint64 { return Murmur2Bit64Code }
func (murmur2x64) Name() string { return "murmur2-64" }
func (murmur2x64) Size() int    { return 64 }

func (f murmur2x64) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	b := data.Bytes()
	n := len(b)
	h := f.seed ^ (uint64(n) * mix2x64)

	groups := n / 8
	for i := 0; i < groups; i++ {
		if i > 0 && i%hash.CheckInterval == 0 {
			if err := hash.Checkpoint(ctx); err != nil {
				return nil, err
			}
		}
		k := binary.LittleEndian.Uint64(b[i*8:])
		k *= mix2x64
		k ^= k >> r2x64
		k *= mix2x64

		h ^= k
		h *= mix2x64
	}

	tail := b[groups*8:]
	switch len(tail) {
	case 7:
		h ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		h ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		h ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		h ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		h ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		h ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		h ^= uint64(tail[0])
		h *= mix2x64
	}

	h ^= h >> r2x64
	h *= mix2x64
	h ^= h >> r2x64

	return value.New(Murmur2Bit64Code, binary.LittleEndian.AppendUint64(nil, h), 64), nil
}
