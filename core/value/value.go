package value

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
	"github.com/storacha/go-hashfn/core/encoding/hex"
	"github.com/storacha/go-hashfn/core/failure"
)

// HashValue is the immutable result of a hash or checksum computation.
type HashValue interface {
	// Code is the multicodec code of the algorithm that produced the digest.
	Code() uint64
	// BitLength is the number of significant bits in the digest.
	BitLength() int
	// Digest returns a copy of the raw digest bytes.
	Digest() []byte
	// Hex renders two hex digits per digest byte, in digest order.
	Hex(upper bool) string
	// Binary renders the significant bits MSB first. Unless pad is set the
	// leading zeros of the most significant byte are omitted.
	Binary(pad bool) string
	// Base64 renders the digest bytes as padded standard Base64.
	Base64() string
	// Multihash tags the digest with its algorithm code.
	Multihash() multihash.Multihash
	// Multibase renders the digest bytes with a multibase prefix.
	Multibase(enc multibase.Encoding) (string, error)
	// CID is a v1 raw CID over the multihash of this value.
	CID() cid.Cid
	Equal(other HashValue) bool
	String() string
}

type hashValue struct {
	code      uint64
	digest    []byte
	bitLength int
}

// New creates a hash value over a copy of digest. It panics if bitLength does
// not fit in digest.
func New(code uint64, digest []byte, bitLength int) HashValue {
	if bitLength < 0 || bitLength > len(digest)*8 {
		panic(fmt.Sprintf("bit length %d does not fit in a %d byte digest", bitLength, len(digest)))
	}
	d := make([]byte, len(digest))
	copy(d, digest)
	return hashValue{code, d, bitLength}
}

func (v hashValue) Code() uint64 {
	return v.code
}

func (v hashValue) BitLength() int {
	return v.bitLength
}

func (v hashValue) Digest() []byte {
	d := make([]byte, len(v.digest))
	copy(d, v.digest)
	return d
}

func (v hashValue) Hex(upper bool) string {
	return hex.Encode(v.digest, upper)
}

func (v hashValue) Binary(pad bool) string {
	if v.bitLength == 0 {
		return ""
	}
	n := (v.bitLength + 7) / 8
	significant := v.digest[len(v.digest)-n:]

	var sb strings.Builder
	sb.Grow(n * 8)
	for i, b := range significant {
		if i == 0 {
			if rem := v.bitLength % 8; rem != 0 {
				b &= byte(1<<rem) - 1
			}
			if !pad {
				sb.WriteString(strconv.FormatUint(uint64(b), 2))
				continue
			}
		}
		fmt.Fprintf(&sb, "%08b", b)
	}
	return sb.String()
}

func (v hashValue) Base64() string {
	return base64.StdEncoding.EncodeToString(v.digest)
}

func (v hashValue) Multihash() multihash.Multihash {
	// Encode only writes varints, so an error here is a broken invariant.
	mh, err := multihash.Encode(v.digest, v.code)
	if err != nil {
		panic(err)
	}
	return mh
}

func (v hashValue) Multibase(enc multibase.Encoding) (string, error) {
	return multibase.Encode(enc, v.digest)
}

func (v hashValue) CID() cid.Cid {
	return cid.NewCidV1(cid.Raw, v.Multihash())
}

func (v hashValue) Equal(other HashValue) bool {
	if other == nil {
		return false
	}
	return v.code == other.Code() &&
		v.bitLength == other.BitLength() &&
		bytes.Equal(v.digest, other.Digest())
}

func (v hashValue) String() string {
	return v.Hex(false)
}

// FromMultihash decodes a multihash produced by [HashValue.Multihash]. The bit
// length is taken to be the full width of the digest.
func FromMultihash(b []byte) (HashValue, error) {
	r := bytes.NewReader(b)
	code, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, failure.NewInvalidArgumentErrorf("multihash", "reading code: %s", err)
	}
	size, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, failure.NewInvalidArgumentErrorf("multihash", "reading digest size: %s", err)
	}
	if uint64(r.Len()) != size {
		return nil, failure.NewInvalidArgumentErrorf("multihash", "digest size %d does not match remaining %d bytes", size, r.Len())
	}
	digest := b[len(b)-r.Len():]
	return New(code, digest, len(digest)*8), nil
}
