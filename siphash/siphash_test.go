package siphash

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/dchest/siphash"
	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/testing/helpers"
	"github.com/stretchr/testify/require"
)

// key 00 01 .. 0f from the SipHash paper
const (
	paperKey0 = 0x0706050403020100
	paperKey1 = 0x0f0e0d0c0b0a0908
)

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestPaperVectors(t *testing.T) {
	ctx := context.Background()

	h64 := helpers.Must(New(SipHash64, WithKey(paperKey0, paperKey1)))
	v := helpers.Must(hash.Sum(ctx, h64, sequence(15)))
	require.Equal(t, uint64(0xa129ca6149be45e5), binary.LittleEndian.Uint64(v.Digest()))

	v = helpers.Must(hash.Sum(ctx, h64, nil))
	require.Equal(t, "310e0edd47db6f72", v.Hex(false))

	h128 := helpers.Must(New(SipHash128, WithKeyBytes(sequence(16))))
	v = helpers.Must(hash.Sum(ctx, h128, nil))
	require.Equal(t, "a3817f04ba25a8e66df67214c7550293", v.Hex(false))
	require.Equal(t, 128, v.BitLength())
}

func TestMatchesOneShot(t *testing.T) {
	ctx := context.Background()
	seeds := helpers.RandomSeeds(2)
	k0, k1 := seeds[0], seeds[1]
	h64 := helpers.Must(New(SipHash64, WithKey(k0, k1)))
	h128 := helpers.Must(New(SipHash128, WithKey(k0, k1)))
	for _, size := range []int{0, 1, 7, 8, 9, 63, chunkSize + 3} {
		data := helpers.RandomBytes(size)

		v := helpers.Must(hash.Sum(ctx, h64, data))
		require.Equal(t, siphash.Hash(k0, k1, data), binary.LittleEndian.Uint64(v.Digest()))

		w := helpers.Must(hash.Sum(ctx, h128, data))
		e0, e1 := siphash.Hash128(k0, k1, data)
		d := w.Digest()
		require.Equal(t, e0, binary.LittleEndian.Uint64(d[:8]))
		require.Equal(t, e1, binary.LittleEndian.Uint64(d[8:]))
	}
}

func TestKeySensitivity(t *testing.T) {
	ctx := context.Background()
	seen := map[string]struct{}{}
	for _, k := range helpers.RandomSeeds(100) {
		h := helpers.Must(New(SipHash64, WithKey(k, 0)))
		seen[helpers.Must(hash.SumString(ctx, h, "Nice Boat")).Hex(false)] = struct{}{}
	}
	require.Greater(t, len(seen), 95)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v, err := hash.Sum(ctx, helpers.Must(New(SipHash128)), make([]byte, 10))
	require.ErrorIs(t, err, failure.ErrCancelled)
	require.Nil(t, v)
}

func TestCancelledMidway(t *testing.T) {
	data := helpers.RandomBytes(3 * chunkSize)
	for _, typ := range []Type{SipHash64, SipHash128} {
		h := helpers.Must(New(typ))
		t.Run(h.Name(), func(t *testing.T) {
			// the entry check and the check before the first chunk both pass
			v, err := hash.Sum(helpers.CancelAfter(2), h, data)
			require.ErrorIs(t, err, failure.ErrCancelled)
			require.ErrorIs(t, err, context.Canceled)
			require.Nil(t, v)

			v, err = hash.Sum(helpers.CancelAfter(2), h, data[:chunkSize])
			require.NoError(t, err)
			require.Equal(t, h.Size(), v.BitLength())
		})
	}
}

func TestFactory(t *testing.T) {
	_, err := New(SipHash64, WithKeyBytes([]byte{1, 2, 3}))
	require.ErrorIs(t, err, failure.ErrInvalidArgument)

	_, err = NewWithConfig(SipHash64, nil)
	require.ErrorIs(t, err, failure.ErrInvalidArgument)

	_, err = New(Type(3))
	require.ErrorIs(t, err, failure.ErrInvalidArgument)

	require.Equal(t, sequence(16), Config{Key0: paperKey0, Key1: paperKey1}.Key())
	require.Equal(t, "siphash-64", helpers.Must(New(SipHash64)).Name())
}
