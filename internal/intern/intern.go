// Package intern provides a bounded identifier-interning cache for the
// identifier/chat strings that recur heavily across the L6 message
// catalog (block names, dimension names, recipe ids). Grounded on the
// teacher's own xxhash dependency (used there to hash series/tag keys)
// combined with the LRU cache the kryptco-kr example repo depends on.
package intern

import (
	"github.com/SubZeroLabs/MinecraftTypes/internal/options"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCapacity bounds the cache to a modest working set per decode
// session; most identifier strings in a single session cluster around a
// few hundred distinct values (block/item/biome registry names).
const defaultCapacity = 1024

// Cache interns strings keyed by their xxhash digest, so identifier
// strings the catalog decodes many times within one session share one
// stored copy (e.g. recipe ids across UnlockRecipes messages).
type Cache struct {
	lru *lru.Cache[uint64, string]
}

// New constructs a Cache with defaultCapacity, configurable via opts
// using the shared functional-options helper.
func New(opts ...options.Option[*Config]) (*Cache, error) {
	cfg := &Config{capacity: defaultCapacity}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	backing, err := lru.New[uint64, string](cfg.capacity)
	if err != nil {
		return nil, err
	}

	return &Cache{lru: backing}, nil
}

// Config holds Cache's configurable capacity.
type Config struct {
	capacity int
}

// WithCapacity overrides the default cache capacity.
func WithCapacity(n int) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.capacity = n })
}

// Intern returns the canonical stored copy of s, storing s itself the
// first time its digest is seen.
func (c *Cache) Intern(s string) string {
	key := xxhash.Sum64String(s)

	if existing, ok := c.lru.Get(key); ok {
		return existing
	}

	c.lru.Add(key, s)
	return s
}

// Len reports the number of distinct strings currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// defaultCache backs Identifiers; built with defaultCapacity and no
// options, since the values passing through it (identifier strings from
// Decode) are already validated before they reach it.
var defaultCache = mustNew()

func mustNew() *Cache {
	c, err := New()
	if err != nil {
		panic(err)
	}

	return c
}

// Identifiers returns the package-wide cache used to canonicalize
// identifier strings (recipe ids, dimension/world names) decoded
// repeatedly within the play-phase catalog.
func Identifiers() *Cache {
	return defaultCache
}
