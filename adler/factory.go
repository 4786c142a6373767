// Package adler implements the Adler family of checksums.
//
// Two running sums are kept modulo a prime: a starts at 1 and accumulates the
// input bytes, b accumulates the successive values of a. The checksum is b in
// the upper half and a in the lower half. Adler-32 is the zlib checksum;
// Adler-16 and Adler-64 apply the same construction with half widths of 8 and
// 32 bits.
package adler

import (
	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/hash"
)

// Type selects the checksum width. Its value is the width in bits.
type Type int

const (
	Adler16 Type = 16
	Adler32 Type = 32
	Adler64 Type = 64
)

// Multicodec codes, from the private use range.
const (
	Adler16Code = 0x3a0010
	Adler32Code = 0x3a0020
	Adler64Code = 0x3a0040
)

// Config configures an Adler checksum.
type Config struct {
	// BigEndian lays the checksum out most significant byte first. By default
	// the digest bytes are little endian.
	BigEndian bool
}

// Option is an option configuring an Adler checksum.
type Option func(cfg *Config) error

// WithBigEndian lays out the digest most significant byte first, the order
// used by zlib.
func WithBigEndian() Option {
	return func(cfg *Config) error {
		cfg.BigEndian = true
		return nil
	}
}

// New creates an Adler checksum of the given type.
func New(typ Type, opts ...Option) (hash.Hasher, error) {
	cfg := Config{}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return NewWithConfig(typ, &cfg)
}

// NewWithConfig creates an Adler checksum of the given type from cfg, which
// must not be nil.
func NewWithConfig(typ Type, cfg *Config) (hash.Hasher, error) {
	if cfg == nil {
		return nil, failure.NewInvalidArgumentErrorf("config", "must not be nil")
	}
	v, ok := variants[typ]
	if !ok {
		return nil, failure.NewInvalidArgumentErrorf("type", "unsupported Adler width %d", int(typ))
	}
	return function{variant: v, bigEndian: cfg.BigEndian}, nil
}
