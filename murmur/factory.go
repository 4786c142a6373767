// Package murmur implements Austin Appleby's MurmurHash, generations 1 to 3.
//
// Every variant reads its input in little-endian groups, folds each mixed
// group into the running state, mixes the trailing partial group through a
// fallthrough cascade and finishes with an avalanche step. Digest bytes are
// the final lane states in little-endian order, lane 1 first.
//
// The 32-bit variants and all of MurmurHash3 take a 32-bit seed. The low 32
// bits of [Config.Seed] are used for them; MurmurHash64A uses all 64.
package murmur

import (
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/hash"
)

type Type int

const (
	Murmur1Bit32 Type = iota + 1
	Murmur2Bit32
	Murmur2Bit64
	Murmur3Bit32
	Murmur3Bit64
	Murmur3Bit128
	Murmur3X86Bit128
)

// Multicodec codes. MurmurHash3 codes are registered in the multicodec table,
// the remainder are from the private use range.
const (
	Murmur3Bit64Code  = uint64(multicodec.Murmur3X64_64)
	Murmur3Bit32Code  = uint64(multicodec.Murmur3_32)
	Murmur3Bit128Code = uint64(multicodec.Murmur3X64_128)

	Murmur1Bit32Code     = 0x3b0120
	Murmur2Bit32Code     = 0x3b0220
	Murmur2Bit64Code     = 0x3b0240
	Murmur3X86Bit128Code = 0x3b0380
)

// Config configures a MurmurHash function.
type Config struct {
	Seed uint64
}

// Option is an option configuring a MurmurHash function.
type Option func(cfg *Config) error

// WithSeed configures the seed. Defaults to 0.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) error {
		cfg.Seed = seed
		return nil
	}
}

// New creates a MurmurHash function of the given type.
func New(typ Type, opts ...Option) (hash.Hasher, error) {
	cfg := Config{}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return NewWithConfig(typ, &cfg)
}

// NewWithConfig creates a MurmurHash function of the given type from cfg,
// which must not be nil.
func NewWithConfig(typ Type, cfg *Config) (hash.Hasher, error) {
	if cfg == nil {
		return nil, failure.NewInvalidArgumentErrorf("config", "must not be nil")
	}
	seed32 := uint32(cfg.Seed)
	switch typ {
	case Murmur1Bit32:
		return murmur1x32{seed32}, nil
	case Murmur2Bit32:
		return murmur2x32{seed32}, nil
	case Murmur2Bit64:
		return murmur2x64{cfg.Seed}, nil
	case Murmur3Bit32:
		return murmur3x32{seed32}, nil
	case Murmur3Bit64:
		return murmur3x64{seed32}, nil
	case Murmur3Bit128:
		return murmur3x128{seed32}, nil
	case Murmur3X86Bit128:
		return murmur3x86x128{seed32}, nil
	default:
		return nil, failure.NewInvalidArgumentErrorf("type", "unknown MurmurHash type %d", int(typ))
	}
}

// Lookup resolves a MurmurHash generation and output width to a type. The
// 128-bit width of generation 3 resolves to the x64 variant.
func Lookup(generation int, bits int) (Type, error) {
	var widths map[int]Type
	switch generation {
	case 1:
		widths = map[int]Type{32: Murmur1Bit32}
	case 2:
		widths = map[int]Type{32: Murmur2Bit32, 64: Murmur2Bit64}
	case 3:
		widths = map[int]Type{32: Murmur3Bit32, 64: Murmur3Bit64, 128: Murmur3Bit128}
	default:
		return 0, failure.NewInvalidArgumentErrorf("generation", "unknown MurmurHash generation %d", generation)
	}
	typ, ok := widths[bits]
	if !ok {
		return 0, failure.NewInvalidArgumentErrorf("bits", "MurmurHash%d does not support a %d bit width", generation, bits)
	}
	return typ, nil
}
