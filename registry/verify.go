package registry

import (
	"context"

	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/core/value"
)

// Verify recomputes the digest of data with the algorithm that produced v and
// reports whether it matches. Seeded and keyed algorithms need the same
// options that were used to produce v.
func Verify(ctx context.Context, v value.HashValue, data []byte, opts ...Option) (bool, error) {
	name, err := NameOf(v.Code())
	if err != nil {
		return false, err
	}
	h, err := New(name, opts...)
	if err != nil {
		return false, err
	}
	got, err := hash.Sum(ctx, h, data)
	if err != nil {
		return false, err
	}
	return got.Equal(v), nil
}
