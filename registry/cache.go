package registry

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/storacha/go-hashfn/core/hash"
)

var DefaultCacheSize = 64

// Cache holds built hash functions keyed by identifier and configuration.
// Hash functions are stateless so a cached instance may be shared freely.
type Cache struct {
	data *lru.Cache[string, hash.Hasher]
}

// NewCache creates a new in memory LRU cache of hash functions. Pass a size
// less than 1 to use [DefaultCacheSize].
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, hash.Hasher](size)
	if err != nil {
		return nil, fmt.Errorf("creating hasher LRU: %w", err)
	}
	return &Cache{data: cache}, nil
}

// Get returns the cached hash function for name and opts, building and
// caching it on a miss.
func (c *Cache) Get(name string, opts ...Option) (hash.Hasher, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	name = strings.ToLower(name)
	key := cacheKey(name, cfg)
	if h, ok := c.data.Get(key); ok {
		return h, nil
	}
	h, err := build(name, cfg)
	if err != nil {
		return nil, err
	}
	c.data.Add(key, h)
	return h, nil
}

func (c *Cache) Len() int {
	return c.data.Len()
}

func cacheKey(name string, cfg *config) string {
	return fmt.Sprintf("%s/%t:%d/%t:%d:%d/%t/%p", name, cfg.seeded, cfg.seed, cfg.keyed, cfg.key0, cfg.key1, cfg.bigEndian, cfg.logger)
}
