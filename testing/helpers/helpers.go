package helpers

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"sync/atomic"
)

// Must takes return values from a function and returns the non-error one. If
// the error value is non-nil then it panics.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func RandomBytes(size int) []byte {
	bytes := make([]byte, size)
	_, _ = crand.Read(bytes)
	return bytes
}

// RandomSeeds returns n distinct random 64-bit seeds.
func RandomSeeds(n int) []uint64 {
	seen := make(map[uint64]struct{}, n)
	seeds := make([]uint64, 0, n)
	for len(seeds) < n {
		s := binary.LittleEndian.Uint64(RandomBytes(8))
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		seeds = append(seeds, s)
	}
	return seeds
}

type cancelAfter struct {
	context.Context
	left atomic.Int64
}

func (c *cancelAfter) Err() error {
	if c.left.Add(-1) < 0 {
		return context.Canceled
	}
	return nil
}

// CancelAfter returns a context whose Err reports nil for the first n calls
// and [context.Canceled] from then on. It lets a test cancel a computation
// partway through without racing a timer.
func CancelAfter(n int) context.Context {
	c := &cancelAfter{Context: context.Background()}
	c.left.Store(int64(n))
	return c
}
