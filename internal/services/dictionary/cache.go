package dictionary

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// LookupOracle is an Oracle that can fail. Answers given with an error
// are not definitive and are never cached.
type LookupOracle interface {
	Oracle
	Lookup(word, language string) (bool, error)
}

// CachedOracle memoizes answers from a slower oracle
type CachedOracle struct {
	next  Oracle
	cache *gocache.Cache
}

// NewCachedOracle wraps next, remembering each answer for ttl
func NewCachedOracle(next Oracle, ttl time.Duration, cleanupInterval time.Duration) *CachedOracle {
	return &CachedOracle{
		next:  next,
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// IsValidWord returns the cached answer or asks the wrapped oracle
func (c *CachedOracle) IsValidWord(word, language string) bool {
	key := cacheKey(word, language)
	if val, found := c.cache.Get(key); found {
		return val.(bool)
	}

	lookup, ok := c.next.(LookupOracle)
	if !ok {
		valid := c.next.IsValidWord(word, language)
		c.cache.SetDefault(key, valid)
		return valid
	}

	valid, err := lookup.Lookup(word, language)
	if err != nil {
		return false
	}
	c.cache.SetDefault(key, valid)
	return valid
}

// Flush drops every cached answer
func (c *CachedOracle) Flush() {
	c.cache.Flush()
}

func cacheKey(word, language string) string {
	return strings.ToLower(language) + ":" + word
}

var _ Oracle = (*CachedOracle)(nil)
