package adler

import (
	"context"
	"encoding/binary"
	stdadler "hash/adler32"
	"testing"

	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestAdler32(t *testing.T) {
	cases := []struct {
		data, hex, bin, binWithZero string
	}{
		{"Nice", "8001A203", "10000000000000011010001000000011", "10000000000000011010001000000011"},
		{"Nice Boat", "26034D0F", "100110000000110100110100001111", "00100110000000110100110100001111"},
		{"Nice Boat, James love Jane very much.", "B70C57ED", "10110111000011000101011111101101", "10110111000011000101011111101101"},
	}

	h := helpers.Must(New(Adler32))
	for _, c := range cases {
		t.Run(c.data, func(t *testing.T) {
			v := helpers.Must(hash.SumString(context.Background(), h, c.data))
			require.Equal(t, c.hex, v.Hex(true))
			require.Equal(t, c.bin, v.Binary(false))
			require.Equal(t, c.binWithZero, v.Binary(true))
			require.Equal(t, 32, v.BitLength())
			require.Equal(t, uint64(Adler32Code), v.Code())
		})
	}
}

func TestEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("little endian", func(t *testing.T) {
		v := helpers.Must(hash.Sum(ctx, helpers.Must(New(Adler32)), nil))
		require.Equal(t, "01000000", v.Hex(false))
	})

	t.Run("big endian", func(t *testing.T) {
		v := helpers.Must(hash.Sum(ctx, helpers.Must(New(Adler32, WithBigEndian())), nil))
		require.Equal(t, "00000001", v.Hex(false))
	})

	t.Run("other widths", func(t *testing.T) {
		v16 := helpers.Must(hash.Sum(ctx, helpers.Must(New(Adler16)), nil))
		require.Equal(t, "0100", v16.Hex(false))
		v64 := helpers.Must(hash.Sum(ctx, helpers.Must(New(Adler64)), nil))
		require.Equal(t, "0100000000000000", v64.Hex(false))
	})
}

func TestWidths(t *testing.T) {
	ctx := context.Background()

	v16 := helpers.Must(hash.SumString(ctx, helpers.Must(New(Adler16)), "Nice"))
	require.Equal(t, "85B1", v16.Hex(true))
	require.Equal(t, 16, v16.BitLength())

	v64 := helpers.Must(hash.SumString(ctx, helpers.Must(New(Adler64)), "Nice"))
	require.Equal(t, "80010000A2030000", v64.Hex(true))
	require.Equal(t, 64, v64.BitLength())

	be := helpers.Must(hash.SumString(ctx, helpers.Must(New(Adler64, WithBigEndian())), "Nice"))
	require.Equal(t, "000003A200000180", be.Hex(true))
}

func TestMatchesZlib(t *testing.T) {
	ctx := context.Background()
	h := helpers.Must(New(Adler32, WithBigEndian()))
	for _, size := range []int{1, 3, 16, nmax - 1, nmax, nmax + 1, 3*nmax + 17, 100000} {
		data := helpers.RandomBytes(size)
		v := helpers.Must(hash.Sum(ctx, h, data))
		require.Equal(t, stdadler.Checksum(data), binary.BigEndian.Uint32(v.Digest()), "size %d", size)
	}
}

func TestAllOnesDoNotOverflow(t *testing.T) {
	ctx := context.Background()
	data := make([]byte, 4*nmax)
	for i := range data {
		data[i] = 0xff
	}
	v := helpers.Must(hash.Sum(ctx, helpers.Must(New(Adler32, WithBigEndian())), data))
	require.Equal(t, stdadler.Checksum(data), binary.BigEndian.Uint32(v.Digest()))

	// Adler-64 sums reduce modulo a prime just under 2^32, so the 32-bit sum
	// of a single block must not wrap.
	v64 := helpers.Must(hash.Sum(ctx, helpers.Must(New(Adler64, WithBigEndian())), data[:nmax]))
	a := uint64(1) + uint64(nmax)*0xff
	var b uint64
	for i := uint64(1); i <= nmax; i++ {
		b += 1 + i*0xff
	}
	require.Equal(t, b<<32|a, binary.BigEndian.Uint64(v64.Digest()))
}

func TestRange(t *testing.T) {
	ctx := context.Background()
	h := helpers.Must(New(Adler32))
	buf := []byte("xxNice Boatyy")
	v := helpers.Must(hash.SumRange(ctx, h, buf, 2, 9))
	require.Equal(t, "26034D0F", v.Hex(true))

	_, err := hash.SumRange(ctx, h, buf, 5, 9)
	require.ErrorIs(t, err, failure.ErrRange)
}

func TestDeterminism(t *testing.T) {
	ctx := context.Background()
	for _, typ := range []Type{Adler16, Adler32, Adler64} {
		h := helpers.Must(New(typ))
		data := helpers.RandomBytes(1000)
		a := helpers.Must(hash.Sum(ctx, h, data))
		b := helpers.Must(hash.Sum(ctx, h, data))
		require.True(t, a.Equal(b))
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, size := range []int{0, 10, 10 * nmax} {
		v, err := hash.Sum(ctx, helpers.Must(New(Adler32)), make([]byte, size))
		require.ErrorIs(t, err, failure.ErrCancelled)
		require.Nil(t, v)
	}
}

func TestCancelledMidway(t *testing.T) {
	data := helpers.RandomBytes(3 * nmax)
	for _, typ := range []Type{Adler16, Adler32, Adler64} {
		h := helpers.Must(New(typ))
		t.Run(h.Name(), func(t *testing.T) {
			// the first block is summed before the context reports cancellation
			v, err := hash.Sum(helpers.CancelAfter(1), h, data)
			require.ErrorIs(t, err, failure.ErrCancelled)
			require.ErrorIs(t, err, context.Canceled)
			require.Nil(t, v)

			v, err = hash.Sum(helpers.CancelAfter(1), h, data[:nmax])
			require.NoError(t, err)
			require.Equal(t, h.Size(), v.BitLength())
		})
	}
}

func TestFactory(t *testing.T) {
	t.Run("unsupported width", func(t *testing.T) {
		_, err := New(Type(24))
		require.ErrorIs(t, err, failure.ErrInvalidArgument)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewWithConfig(Adler32, nil)
		require.ErrorIs(t, err, failure.ErrInvalidArgument)
	})

	t.Run("metadata", func(t *testing.T) {
		h := helpers.Must(New(Adler64))
		require.Equal(t, "adler-64", h.Name())
		require.Equal(t, 64, h.Size())
		require.Equal(t, uint64(Adler64Code), h.Code())
	})
}
