package murmur

import (
	"context"
	"encoding/binary"

	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/view"
)

const (
	mix1 uint32 = 0xc6a4a793
	r1          = 16
)

type murmur1x32 struct {
	seed uint32
}

func (murmur1x32) Code() uint64 { return Murmur1Bit32Code }
func (murmur1x32) Name() string { return "murmur1-32" }
func (murmur1x32) Size() int    { return 32 }

func (f murmur1x32) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	b := data.Bytes()
	n := len(b)
	h := f.seed ^ (uint32(n) * mix1)

	groups := n / 4
	for i := 0; i < groups; i++ {
		if i > 0 && i%hash.CheckInterval == 0 {
			if err := hash.Checkpoint(ctx); err != nil {
				return nil, err
			}
		}
		h += binary.LittleEndian.Uint32(b[i*4:])
		h *= mix1
		h ^= h >> r1
	}

	tail := b[groups*4:]
	switch len(tail) {
	case 3:
		h += uint32(tail[2]) << 16
		fallthrough
	case 2:
		h += uint32(tail[1]) << 8
		fallthrough
	case 1:
		h += uint32(tail[0])
		h *= mix1
		h ^= h >> r1
	}

	h *= mix1
	h ^= h >> 10
	h *= mix1
	h ^= h >> 17

	return value.New(Murmur1Bit32Code, binary.LittleEndian.AppendUint32(nil, h), 32), nil
}
