package xxhash

import (
	"context"
	"encoding/binary"

	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/view"
	"github.com/zeebo/xxh3"
)

// chunkSize is the number of bytes written to the XXH3 hasher between
// cancellation checks.
const chunkSize = 64 * hash.CheckInterval

// stream feeds b to a seeded XXH3 hasher. Inputs that fit in one chunk are
// hashed in a single call.
func stream(ctx context.Context, b []byte, seed uint64) (*xxh3.Hasher, error) {
	h := xxh3.NewSeed(seed)
	for len(b) > 0 {
		if err := hash.Checkpoint(ctx); err != nil {
			return nil, err
		}
		n := min(len(b), chunkSize)
		_, _ = h.Write(b[:n])
		b = b[n:]
	}
	return h, nil
}

type xxh3x64 struct {
	seed uint64
}

func (xxh3x64) Code() uint64 { return XXH3Bit64Code }
func (xxh3x64) Name() string { return "xxh3-64" }
func (xxh3x64) Size() int    { return 64 }

func (f xxh3x64) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	b := data.Bytes()
	var sum uint64
	if len(b) <= chunkSize {
		sum = xxh3.HashSeed(b, f.seed)
	} else {
		h, err := stream(ctx, b, f.seed)
		if err != nil {
			return nil, err
		}
		sum = h.Sum64()
	}
	return value.New(XXH3Bit64Code, binary.LittleEndian.AppendUint64(nil, sum), 64), nil
}

type xxh3x128 struct {
	seed uint64
}

func (xxh3x128) Code() uint64 { return XXH3Bit128Code }
func (xxh3x128) Name() string { return "xxh3-128" }
func (xxh3x128) Size() int    { return 128 }

func (f xxh3x128) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	b := data.Bytes()
	var sum xxh3.Uint128
	if len(b) <= chunkSize {
		sum = xxh3.Hash128Seed(b, f.seed)
	} else {
		h, err := stream(ctx, b, f.seed)
		if err != nil {
			return nil, err
		}
		sum = h.Sum128()
	}
	// low half first, matching the little-endian layout of the other families
	digest := binary.LittleEndian.AppendUint64(make([]byte, 0, 16), sum.Lo)
	digest = binary.LittleEndian.AppendUint64(digest, sum.Hi)
	return value.New(XXH3Bit128Code, digest, 128), nil
}
