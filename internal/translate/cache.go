package translate

import (
	"context"
	"sync"
)

type cacheKey struct {
	text, from, to string
}

// Cached memoizes successful translations in memory. Errors are not cached.
type Cached struct {
	inner Translator

	mu      sync.Mutex
	entries map[cacheKey]Result
	limit   int
}

// NewCached wraps inner with an in-memory cache holding at most limit
// entries. When full, the cache is cleared before the next insert.
func NewCached(inner Translator, limit int) *Cached {
	if limit <= 0 {
		limit = 512
	}
	return &Cached{inner: inner, entries: make(map[cacheKey]Result), limit: limit}
}

func (c *Cached) Translate(ctx context.Context, text, from, to string) (Result, error) {
	key := cacheKey{text: text, from: from, to: to}

	c.mu.Lock()
	res, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return res, nil
	}

	res, err := c.inner.Translate(ctx, text, from, to)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.limit {
		clear(c.entries)
	}
	c.entries[key] = res
	return res, nil
}

// Len returns the number of cached translations.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
