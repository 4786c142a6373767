// Package siphash provides keyed SipHash-2-4 at 64 and 128 bits, backed by
// github.com/dchest/siphash.
package siphash

import (
	"context"
	"encoding/binary"
	gohash "hash"

	"github.com/dchest/siphash"
	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/view"
)

type Type int

const (
	SipHash64 Type = iota + 1
	SipHash128
)

// Multicodec codes from the private use range.
const (
	SipHash64Code  = 0x3c0240
	SipHash128Code = 0x3c0280
)

// chunkSize is the number of bytes written between cancellation checks.
const chunkSize = 8 * 8 * hash.CheckInterval

// Config holds the 128-bit key as two little-endian halves.
type Config struct {
	Key0 uint64
	Key1 uint64
}

// Key returns the 16 key bytes.
func (c Config) Key() []byte {
	k := binary.LittleEndian.AppendUint64(make([]byte, 0, 16), c.Key0)
	return binary.LittleEndian.AppendUint64(k, c.Key1)
}

// Option is an option configuring a SipHash function.
type Option func(cfg *Config) error

// WithKey configures the key. Defaults to all zeros.
func WithKey(key0, key1 uint64) Option {
	return func(cfg *Config) error {
		cfg.Key0 = key0
		cfg.Key1 = key1
		return nil
	}
}

// WithKeyBytes configures the key from its 16 byte form.
func WithKeyBytes(key []byte) Option {
	return func(cfg *Config) error {
		if len(key) != 16 {
			return failure.NewInvalidArgumentErrorf("key", "must be 16 bytes, got %d", len(key))
		}
		cfg.Key0 = binary.LittleEndian.Uint64(key[:8])
		cfg.Key1 = binary.LittleEndian.Uint64(key[8:])
		return nil
	}
}

// New creates a SipHash function of the given type.
func New(typ Type, opts ...Option) (hash.Hasher, error) {
	cfg := Config{}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return NewWithConfig(typ, &cfg)
}

// NewWithConfig creates a SipHash function of the given type from cfg, which
// must not be nil.
func NewWithConfig(typ Type, cfg *Config) (hash.Hasher, error) {
	if cfg == nil {
		return nil, failure.NewInvalidArgumentErrorf("config", "must not be nil")
	}
	switch typ {
	case SipHash64:
		return function{name: "siphash-64", code: SipHash64Code, bits: 64, key: cfg.Key(), newHash: newHash64}, nil
	case SipHash128:
		return function{name: "siphash-128", code: SipHash128Code, bits: 128, key: cfg.Key(), newHash: siphash.New128}, nil
	default:
		return nil, failure.NewInvalidArgumentErrorf("type", "unknown SipHash type %d", int(typ))
	}
}

func newHash64(key []byte) gohash.Hash {
	return siphash.New(key)
}

type function struct {
	name    string
	code    uint64
	bits    int
	key     []byte
	newHash func(key []byte) gohash.Hash
}

func (f function) Code() uint64 { return f.code }
func (f function) Name() string { return f.name }
func (f function) Size() int    { return f.bits }

func (f function) ComputeHash(ctx context.Context, data view.View) (value.HashValue, error) {
	if err := hash.Checkpoint(ctx); err != nil {
		return nil, err
	}
	h := f.newHash(f.key)
	b := data.Bytes()
	for len(b) > 0 {
		if err := hash.Checkpoint(ctx); err != nil {
			return nil, err
		}
		n := min(len(b), chunkSize)
		_, _ = h.Write(b[:n])
		b = b[n:]
	}
	return value.New(f.code, h.Sum(nil), f.bits), nil
}
