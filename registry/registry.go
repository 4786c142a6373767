// Package registry resolves algorithm identifiers such as "murmur3-128" to
// configured hash functions.
package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hashfn/adler"
	"github.com/storacha/go-hashfn/core/failure"
	"github.com/storacha/go-hashfn/core/hash"
	"github.com/storacha/go-hashfn/murmur"
	"github.com/storacha/go-hashfn/siphash"
	"github.com/storacha/go-hashfn/xxhash"
)

// Option is an option configuring a hash function resolved by name.
type Option func(cfg *config) error

type config struct {
	seed      uint64
	seeded    bool
	key0      uint64
	key1      uint64
	keyed     bool
	bigEndian bool
	logger    *slog.Logger
}

// WithSeed configures the seed of a MurmurHash or xxHash function.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		cfg.seeded = true
		return nil
	}
}

// WithKey configures the key of a SipHash function.
func WithKey(key0, key1 uint64) Option {
	return func(cfg *config) error {
		cfg.key0 = key0
		cfg.key1 = key1
		cfg.keyed = true
		return nil
	}
}

// WithBigEndian makes an Adler checksum emit its digest big-endian.
func WithBigEndian() Option {
	return func(cfg *config) error {
		cfg.bigEndian = true
		return nil
	}
}

// WithLogger logs every computation of the resolved function to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}

type family int

const (
	familyAdler family = iota
	familyMurmur
	familyXXHash
	familySipHash
)

type entry struct {
	family family
	code   uint64
	build  func(cfg *config) (hash.Hasher, error)
}

func adlerEntry(typ adler.Type, code uint64) entry {
	return entry{familyAdler, code, func(cfg *config) (hash.Hasher, error) {
		return adler.NewWithConfig(typ, &adler.Config{BigEndian: cfg.bigEndian})
	}}
}

func murmurEntry(typ murmur.Type, code uint64) entry {
	return entry{familyMurmur, code, func(cfg *config) (hash.Hasher, error) {
		return murmur.NewWithConfig(typ, &murmur.Config{Seed: cfg.seed})
	}}
}

func xxhashEntry(typ xxhash.Type, code uint64) entry {
	return entry{familyXXHash, code, func(cfg *config) (hash.Hasher, error) {
		base := xxhash.DefaultConfig()
		base.Seed = cfg.seed
		return xxhash.NewWithConfig(typ, &base)
	}}
}

func siphashEntry(typ siphash.Type, code uint64) entry {
	return entry{familySipHash, code, func(cfg *config) (hash.Hasher, error) {
		return siphash.NewWithConfig(typ, &siphash.Config{Key0: cfg.key0, Key1: cfg.key1})
	}}
}

var entries = map[string]entry{
	"adler-16": adlerEntry(adler.Adler16, adler.Adler16Code),
	"adler-32": adlerEntry(adler.Adler32, adler.Adler32Code),
	"adler-64": adlerEntry(adler.Adler64, adler.Adler64Code),

	"murmur1-32":      murmurEntry(murmur.Murmur1Bit32, murmur.Murmur1Bit32Code),
	"murmur2-32":      murmurEntry(murmur.Murmur2Bit32, murmur.Murmur2Bit32Code),
	"murmur2-64":      murmurEntry(murmur.Murmur2Bit64, murmur.Murmur2Bit64Code),
	"murmur3-32":      murmurEntry(murmur.Murmur3Bit32, murmur.Murmur3Bit32Code),
	"murmur3-64":      murmurEntry(murmur.Murmur3Bit64, murmur.Murmur3Bit64Code),
	"murmur3-128":     murmurEntry(murmur.Murmur3Bit128, murmur.Murmur3Bit128Code),
	"murmur3-x86-128": murmurEntry(murmur.Murmur3X86Bit128, murmur.Murmur3X86Bit128Code),

	"xxhash-32": xxhashEntry(xxhash.XXHash32, xxhash.XXHash32Code),
	"xxhash-64": xxhashEntry(xxhash.XXHash64, xxhash.XXHash64Code),
	"xxh3-64":   xxhashEntry(xxhash.XXH3Bit64, xxhash.XXH3Bit64Code),
	"xxh3-128":  xxhashEntry(xxhash.XXH3Bit128, xxhash.XXH3Bit128Code),

	"siphash-64":  siphashEntry(siphash.SipHash64, siphash.SipHash64Code),
	"siphash-128": siphashEntry(siphash.SipHash128, siphash.SipHash128Code),
}

// Names returns every known identifier in sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NameOf returns the identifier of the algorithm with the given multicodec
// code.
func NameOf(code uint64) (string, error) {
	for name, e := range entries {
		if e.code == code {
			return name, nil
		}
	}
	return "", failure.NewInvalidArgumentErrorf("code", "no algorithm for %s (0x%x)", multicodec.Code(code), code)
}

// New creates the hash function named name. Identifiers are case
// insensitive. Options that do not apply to the named family are rejected.
func New(name string, opts ...Option) (hash.Hasher, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return build(strings.ToLower(name), cfg)
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func build(name string, cfg *config) (hash.Hasher, error) {
	e, ok := entries[name]
	if !ok {
		return nil, failure.NewInvalidArgumentErrorf("name", "unknown algorithm %q", name)
	}
	if cfg.seeded && e.family != familyMurmur && e.family != familyXXHash {
		return nil, failure.NewInvalidArgumentErrorf("seed", "%s does not take a seed", name)
	}
	if cfg.keyed && e.family != familySipHash {
		return nil, failure.NewInvalidArgumentErrorf("key", "%s does not take a key", name)
	}
	if cfg.bigEndian && e.family != familyAdler {
		return nil, failure.NewInvalidArgumentErrorf("bigEndian", "%s has a fixed byte order", name)
	}
	h, err := e.build(cfg)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", name, err)
	}
	return hash.WithLogger(h, cfg.logger), nil
}
