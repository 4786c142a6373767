package murmur

import (
	"context"
	"encoding/binary"
	"math/bits"

	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/view"
)

const (
	c1x32 uint32 = 0xcc9e2d51
	c2x32 uint32 = 0x1b873593

	c1x64 uint64 = 0x87c37b91114253d5
	c2x64 uint64 = 0x4cf5ad432745937f
)

func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

type murmur3x32 struct {
	seed uint32
}

func (murmur3x32) Code() uint64 { return Murmur3Bit32Code }
func (murmur3x32) Name() string { return "murmur3-32" }
func (murmur3x32) Size() int    { return 32 }

func (f murmur3x32) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	b := data.Bytes()
	n := len(b)
	h := f.seed

	groups := n / 4
	for i := 0; i < groups; i++ {
		if i > 0 && i%hash.CheckInterval == 0 {
			if err := hash.Checkpoint(ctx); err != nil {
				return nil, err
			}
		}
		k := binary.LittleEndian.Uint32(b[i*4:])
		k *= c1x32
		k = bits.RotateLeft32(k, 15)
		k *= c2x32

		h ^= k
		h = bits.RotateLeft32(h, 13)
		h = h*5 + 0xe6546b64
	}

	tail := b[groups*4:]
	var k uint32
	switch len(tail) {
	case 3:
		k ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(tail[0])
		k *= c1x32
		k = bits.RotateLeft32(k, 15)
		k *= c2x32
		h ^= k
	}

	h ^= uint32(n)
	h = fmix32(h)

	return value.New(Murmur3Bit32Code, binary.LittleEndian.AppendUint32(nil, h), 32), nil
}

// sum128x64 is the x64 128-bit worker shared by the 64 and 128-bit variants.
func sum128x64(ctx context.Context, b []byte, seed uint32) (uint64, uint64, error) {
	n := len(b)
	h1, h2 := uint64(seed), uint64(seed)

	groups := n / 16
	for i := 0; i < groups; i++ {
		if i > 0 && i%hash.CheckInterval == 0 {
			if err := hash.Checkpoint(ctx); err != nil {
				return 0, 0, err
			}
		}
		k1 := binary.LittleEndian.Uint64(b[i*16:])
		k2 := binary.LittleEndian.Uint64(b[i*16+8:])

		k1 *= c1x64
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2x64
		h1 ^= k1

		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= c2x64
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1x64
		h2 ^= k2

		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	tail := b[groups*16:]
	var k1, k2 uint64
	switch len(tail) {
	case 15:
		k2 ^= uint64(tail[14]) << 48
		fallthrough
	case 14:
		k2 ^= uint64(tail[13]) << 40
		fallthrough
	case 13:
		k2 ^= uint64(tail[12]) << 32
		fallthrough
	case 12:
		k2 ^= uint64(tail[11]) << 24
		fallthrough
	case 11:
		k2 ^= uint64(tail[10]) << 16
		fallthrough
	case 10:
		k2 ^= uint64(tail[9]) << 8
		fallthrough
	case 9:
		k2 ^= uint64(tail[8])
		k2 *= c2x64
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1x64
		h2 ^= k2
		fallthrough
	case 8:
		k1 ^= uint64(tail[7]) << 56
		fallthrough
	case 7:
		k1 ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		k1 ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		k1 ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		k1 ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint64(tail[0])
		k1 *= c1x64
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2x64
		h1 ^= k1
	}

	h1 ^= uint64(n)
	h2 ^= uint64(n)

	h1 += h2
	h2 += h1

	h1 = fmix64(h1)
	h2 = fmix64(h2)

	h1 += h2
	h2 += h1

	return h1, h2, nil
}

type murmur3x128 struct {
	seed uint32
}

func (murmur3x128) Code() uint64 { return Murmur3Bit128Code }
func (murmur3x128) Name() string { return "murmur3-128" }
func (murmur3x128) Size() int    { return 128 }

func (f murmur3x128) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	h1, h2, err := sum128x64(ctx, data.Bytes(), f.seed)
	if err != nil {
		return nil, err
	}
	digest := binary.LittleEndian.AppendUint64(make([]byte, 0, 16), h1)
	digest = binary.LittleEndian.AppendUint64(digest, h2)
	return value.New(Murmur3Bit128Code, digest, 128), nil
}

// murmur3x64 is the first lane of the x64 128-bit variant.
type murmur3x64 struct {
	seed uint32
}

func (murmur3x64) Code() uint64 { return Murmur3Bit64Code }
func (murmur3x64) Name() string { return "murmur3-64" }
func (murmur3x64) Size() int    { return 64 }

func (f murmur3x64) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	h1, _, err := sum128x64(ctx, data.Bytes(), f.seed)
	if err != nil {
		return nil, err
	}
	return value.New(Murmur3Bit64Code, binary.LittleEndian.AppendUint64(nil, h1), 64), nil
}
