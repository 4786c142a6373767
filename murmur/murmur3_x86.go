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
	c1x86 uint32 = 0x239b961b
	c2x86 uint32 = 0xab0e9789
	c3x86 uint32 = 0x38b34ae5
	c4x86 uint32 = 0xa1e38b93
)

// murmur3x86x128 is the 128-bit variant tuned for 32-bit platforms. It runs
// four 32-bit lanes, so its output differs from murmur3x128.
type murmur3x86x128 struct {
	seed uint32
}

func (murmur3x86x128) Code() uint64 { return Murmur3X86Bit128Code }
func (murmur3x86x128) Name() string { return "murmur3-x86-128" }
func (murmur3x86x128) Size() int    { return 128 }

func (f murmur3x86x128) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	b := data.Bytes()
	n := len(b)
	h1, h2, h3, h4 := f.seed, f.seed, f.seed, f.seed

	groups := n / 16
	for i := 0; i < groups; i++ {
		if i > 0 && i%hash.CheckInterval == 0 {
			if err := hash.Checkpoint(ctx); err != nil {
				return nil, err
			}
		}
		k1 := binary.LittleEndian.Uint32(b[i*16:])
		k2 := binary.LittleEndian.Uint32(b[i*16+4:])
		k3 := binary.LittleEndian.Uint32(b[i*16+8:])
		k4 := binary.LittleEndian.Uint32(b[i*16+12:])

		k1 *= c1x86
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2x86
		h1 ^= k1

		h1 = bits.RotateLeft32(h1, 19)
		h1 += h2
		h1 = h1*5 + 0x561ccd1b

		k2 *= c2x86
		k2 = bits.RotateLeft32(k2, 16)
		k2 *= c3x86
		h2 ^= k2

		h2 = bits.RotateLeft32(h2, 17)
		h2 += h3
		h2 = h2*5 + 0x0bcaa747

		k3 *= c3x86
		k3 = bits.RotateLeft32(k3, 17)
		k3 *= c4x86
		h3 ^= k3

		h3 = bits.RotateLeft32(h3, 15)
		h3 += h4
		h3 = h3*5 + 0x96cd1c35

		k4 *= c4x86
		k4 = bits.RotateLeft32(k4, 18)
		k4 *= c1x86
		h4 ^= k4

		h4 = bits.RotateLeft32(h4, 13)
		h4 += h1
		h4 = h4*5 + 0x32ac3b17
	}

	tail := b[groups*16:]
	var k1, k2, k3, k4 uint32
	switch len(tail) {
	case 15:
		k4 ^= uint32(tail[14]) << 16
		fallthrough
	case 14:
		k4 ^= uint32(tail[13]) << 8
		fallthrough
	case 13:
		k4 ^= uint32(tail[12])
		k4 *= c4x86
		k4 = bits.RotateLeft32(k4, 18)
		k4 *= c1x86
		h4 ^= k4
		fallthrough
	case 12:
		k3 ^= uint32(tail[11]) << 24
		fallthrough
	case 11:
		k3 ^= uint32(tail[10]) << 16
		fallthrough
	case 10:
		k3 ^= uint32(tail[9]) << 8
		fallthrough
	case 9:
		k3 ^= uint32(tail[8])
		k3 *= c3x86
		k3 = bits.RotateLeft32(k3, 17)
		k3 *= c4x86
		h3 ^= k3
		fallthrough
	case 8:
		k2 ^= uint32(tail[7]) << 24
		fallthrough
	case 7:
		k2 ^= uint32(tail[6]) << 16
		fallthrough
	case 6:
		k2 ^= uint32(tail[5]) << 8
		fallthrough
	case 5:
		k2 ^= uint32(tail[4])
		k2 *= c2x86
		k2 = bits.RotateLeft32(k2, 16)
		k2 *= c3x86
		h2 ^= k2
		fallthrough
	case 4:
		k1 ^= uint32(tail[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1x86
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2x86
		h1 ^= k1
	}

	h1 ^= uint32(n)
	h2 ^= uint32(n)
	h3 ^= uint32(n)
	h4 ^= uint32(n)

	h1 += h2
	h1 += h3
	h1 += h4
	h2 += h1
	h3 += h1
	h4 += h1

	h1 = fmix32(h1)
	h2 = fmix32(h2)
	h3 = fmix32(h3)
	h4 = fmix32(h4)

	h1 += h2
	h1 += h3
	h1 += h4
	h2 += h1
	h3 += h1
	h4 += h1

	digest := make([]byte, 16)
	binary.LittleEndian.PutUint32(digest[0:], h1)
	binary.LittleEndian.PutUint32(digest[4:], h2)
	binary.LittleEndian.PutUint32(digest[8:], h3)
	binary.LittleEndian.PutUint32(digest[12:], h4)
	return value.New(Murmur3X86Bit128Code, digest, 128), nil
}
