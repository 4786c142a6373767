package hash

import (
	"context"

	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/view"
	"golang.org/x/text/encoding"
)

// Hasher computes a digest over a view of bytes. Implementations carry no
// state between calls and are safe for concurrent use.
type Hasher interface {
	// Code is the multicodec code recorded in the produced hash values.
	Code() uint64
	// Name is the registry identifier of the algorithm, e.g. "murmur3-128".
	Name() string
	// Size is the width of the produced digest in bits.
	Size() int
	// ComputeHash hashes data. It returns a [failure.CancelledError] and no
	// value if ctx is done before the computation completes.
	ComputeHash(ctx context.Context, data view.View) (value.HashValue, error)
}

// CheckInterval is the number of groups or stripes a worker processes between
// cancellation checks.
const CheckInterval = 1024

// Checkpoint returns a [failure.CancelledError] if ctx is done.
func Checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return failure.NewCancelledError(err)
	}
	return nil
}

// Sum hashes the whole of b.
func Sum(ctx context.Context, h Hasher, b []byte) (value.HashValue, error) {
	return h.ComputeHash(ctx, view.Of(b))
}

// SumRange hashes length bytes of b starting at offset.
func SumRange(ctx context.Context, h Hasher, b []byte, offset, length int) (value.HashValue, error) {
	v, err := view.New(b, offset, length)
	if err != nil {
		return nil, err
	}
	return h.ComputeHash(ctx, v)
}

// SumString hashes the UTF-8 bytes of s.
func SumString(ctx context.Context, h Hasher, s string) (value.HashValue, error) {
	return h.ComputeHash(ctx, view.FromString(s))
}

// SumText hashes s encoded with enc, or UTF-8 when enc is nil.
func SumText(ctx context.Context, h Hasher, s string, enc encoding.Encoding) (value.HashValue, error) {
	v, err := view.FromText(s, enc)
	if err != nil {
		return nil, err
	}
	return h.ComputeHash(ctx, v)
}
