package value

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-hashfn/core/encoding/hex"
	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/testing/helpers"
	"github.com/stretchr/testify/require"
)

const testCode = 0x23

func TestNew(t *testing.T) {
	t.Run("copies digest", func(t *testing.T) {
		d := []byte{1, 2}
		v := New(testCode, d, 16)
		d[0] = 9
		require.Equal(t, []byte{1, 2}, v.Digest())

		out := v.Digest()
		out[1] = 9
		require.Equal(t, []byte{1, 2}, v.Digest())
	})

	t.Run("bit length too large", func(t *testing.T) {
		require.Panics(t, func() { New(testCode, []byte{1}, 9) })
	})

	t.Run("negative bit length", func(t *testing.T) {
		require.Panics(t, func() { New(testCode, []byte{1}, -1) })
	})
}

func TestRender(t *testing.T) {
	cases := []struct {
		digest          []byte
		hex, bin, binWZ string
	}{
		{[]byte{0x80, 0x01, 0xa2, 0x03}, "8001A203", "10000000000000011010001000000011", "10000000000000011010001000000011"},
		{[]byte{0x26, 0x03, 0x4d, 0x0f}, "26034D0F", "100110000000110100110100001111", "00100110000000110100110100001111"},
		{[]byte{0xb7, 0x0c, 0x57, 0xed}, "B70C57ED", "10110111000011000101011111101101", "10110111000011000101011111101101"},
		{[]byte{0x00, 0xff}, "00FF", "011111111", "0000000011111111"},
	}
	for _, c := range cases {
		t.Run(c.hex, func(t *testing.T) {
			v := New(testCode, c.digest, len(c.digest)*8)
			require.Equal(t, c.hex, v.Hex(true))
			require.Equal(t, c.bin, v.Binary(false))
			require.Equal(t, c.binWZ, v.Binary(true))
		})
	}
}

func TestRenderPartialByte(t *testing.T) {
	v := New(testCode, []byte{0xfa, 0x0f}, 12)
	require.Equal(t, "1010"+"00001111", v.Binary(false))
	require.Equal(t, "00001010"+"00001111", v.Binary(true))
	require.Equal(t, "fa0f", v.Hex(false))

	w := New(testCode, []byte{0x05}, 3)
	require.Equal(t, "101", w.Binary(false))
	require.Len(t, w.Binary(true), 8)
}

func TestRenderEmpty(t *testing.T) {
	v := New(testCode, nil, 0)
	require.Equal(t, "", v.Hex(true))
	require.Equal(t, "", v.Binary(false))
	require.Equal(t, "", v.Binary(true))
	require.Equal(t, "", v.Base64())
}

func TestBase64(t *testing.T) {
	v := New(testCode, []byte("Nice"), 32)
	require.Equal(t, "TmljZQ==", v.Base64())
}

func TestPaddedBinaryWidth(t *testing.T) {
	for bits := 1; bits <= 64; bits++ {
		digest := helpers.RandomBytes((bits + 7) / 8)
		v := New(testCode, digest, bits)
		require.Len(t, v.Binary(true), ((bits+7)/8)*8)
		require.LessOrEqual(t, len(v.Binary(false)), bits)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, size := range []int{1, 4, 8, 16} {
		digest := helpers.RandomBytes(size)
		v := New(testCode, digest, size*8)
		require.Equal(t, digest, helpers.Must(hex.Decode(v.Hex(true))))
		require.Equal(t, digest, helpers.Must(hex.Decode(v.Hex(false))))
	}
}

func TestMultiformats(t *testing.T) {
	v := New(testCode, []byte{0xde, 0xad, 0xbe, 0xef}, 32)

	t.Run("multihash round trip", func(t *testing.T) {
		mh := v.Multihash()
		require.Equal(t, []byte{0x23, 0x04, 0xde, 0xad, 0xbe, 0xef}, []byte(mh))
		w := helpers.Must(FromMultihash(mh))
		require.True(t, v.Equal(w))
	})

	t.Run("private use code", func(t *testing.T) {
		w := New(0x3b0380, helpers.RandomBytes(16), 128)
		var mh multihash.Multihash
		require.NotPanics(t, func() { mh = w.Multihash() })
		dec := helpers.Must(multihash.Decode(mh))
		require.Equal(t, uint64(0x3b0380), dec.Code)
		require.Equal(t, w.Digest(), dec.Digest)
	})

	t.Run("truncated multihash", func(t *testing.T) {
		_, err := FromMultihash([]byte{0x23, 0x05, 0xde})
		require.ErrorIs(t, err, failure.ErrInvalidArgument)
	})

	t.Run("multibase", func(t *testing.T) {
		s := helpers.Must(v.Multibase(multibase.Base16))
		require.Equal(t, "fdeadbeef", s)
		_, b, err := multibase.Decode(s)
		require.NoError(t, err)
		require.Equal(t, v.Digest(), b)
	})

	t.Run("cid", func(t *testing.T) {
		c := v.CID()
		require.Equal(t, uint64(cid.Raw), c.Prefix().Codec)
		require.Equal(t, []byte(v.Multihash()), []byte(c.Hash()))
		parsed := helpers.Must(cid.Decode(c.String()))
		require.True(t, c.Equals(parsed))
	})
}

func TestEqual(t *testing.T) {
	a := New(testCode, []byte{1, 2}, 16)
	require.True(t, a.Equal(New(testCode, []byte{1, 2}, 16)))
	require.False(t, a.Equal(New(testCode+1, []byte{1, 2}, 16)))
	require.False(t, a.Equal(New(testCode, []byte{1, 2}, 15)))
	require.False(t, a.Equal(New(testCode, []byte{1, 3}, 16)))
	require.False(t, a.Equal(nil))
	require.Equal(t, "0102", a.String())
}

func TestCodec(t *testing.T) {
	v := New(testCode, []byte{0xfa, 0x0f}, 12)

	t.Run("dag-cbor", func(t *testing.T) {
		b := helpers.Must(Encode(v))
		require.True(t, v.Equal(helpers.Must(Decode(b))))
	})

	t.Run("dag-json", func(t *testing.T) {
		b := helpers.Must(EncodeJSON(v))
		require.Contains(t, string(b), `"bitLength":12`)
		require.True(t, v.Equal(helpers.Must(DecodeJSON(b))))
	})

	t.Run("rejects oversize bit length", func(t *testing.T) {
		b := []byte(`{"bitLength":17,"code":35,"digest":{"/":{"bytes":"+g8"}}}`)
		_, err := DecodeJSON(b)
		require.ErrorIs(t, err, failure.ErrInvalidArgument)
	})
}
