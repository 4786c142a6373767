package value

import (
	"fmt"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/value/datamodel"
)

// Encode serializes a hash value as dag-cbor.
func Encode(v HashValue) ([]byte, error) {
	return marshal(dagcbor.Encode, v)
}

// Decode parses a dag-cbor hash value produced by [Encode].
func Decode(b []byte) (HashValue, error) {
	return unmarshal(dagcbor.Decode, b)
}

// EncodeJSON serializes a hash value as dag-json.
func EncodeJSON(v HashValue) ([]byte, error) {
	return marshal(dagjson.Encode, v)
}

// DecodeJSON parses a dag-json hash value produced by [EncodeJSON].
func DecodeJSON(b []byte) (HashValue, error) {
	return unmarshal(dagjson.Decode, b)
}

// ToModel converts a hash value to its serializable model.
func ToModel(v HashValue) *datamodel.HashValueModel {
	return &datamodel.HashValueModel{
		Code:      int64(v.Code()),
		Digest:    v.Digest(),
		BitLength: int64(v.BitLength()),
	}
}

func marshal(enc codec.Encoder, v HashValue) ([]byte, error) {
	b, err := ipld.Marshal(enc, ToModel(v), datamodel.HashValueType())
	if err != nil {
		return nil, fmt.Errorf("encoding hash value: %w", err)
	}
	return b, nil
}

func unmarshal(dec codec.Decoder, b []byte) (HashValue, error) {
	model := datamodel.HashValueModel{}
	_, err := ipld.Unmarshal(b, dec, &model, datamodel.HashValueType())
	if err != nil {
		return nil, fmt.Errorf("decoding hash value: %w", err)
	}
	if model.Code < 0 {
		return nil, failure.NewInvalidArgumentErrorf("code", "must not be negative, got %d", model.Code)
	}
	if model.BitLength < 0 || model.BitLength > int64(len(model.Digest))*8 {
		return nil, failure.NewInvalidArgumentErrorf("bitLength", "%d does not fit in a %d byte digest", model.BitLength, len(model.Digest))
	}
	return New(uint64(model.Code), model.Digest, int(model.BitLength)), nil
}
