package datamodel

import (
	// to use go:embed
	_ "embed"
	"fmt"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/schema"
)

//go:embed hashvalue.ipldsch
var hashValueSchema []byte

// HashValueModel is the serialized form of a hash value.
type HashValueModel struct {
	Code      int64
	Digest    []byte
	BitLength int64
}

var typ schema.Type

func init() {
	ts, err := ipld.LoadSchemaBytes(hashValueSchema)
	if err != nil {
		panic(fmt.Errorf("loading hash value schema: %w", err))
	}
	typ = ts.TypeByName("HashValue")
}

func HashValueType() schema.Type {
	return typ
}

func Schema() []byte {
	return hashValueSchema
}
