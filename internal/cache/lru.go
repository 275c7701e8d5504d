// Package cache provides a bounded keyed container with least-recently-used
// eviction. The scene manager instantiates it twice: once for preloaded
// resources and once for inactive scene instances.
package cache

import (
	"slices"

	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/zerr"
)

// Dispose releases a payload's external resources. The cache calls it
// whenever it destroys a payload itself: on overwrite, eviction, bound
// shrink, and Clear.
type Dispose[V any] func(key string, value V)

// OnEvict is notified with the evicted key whenever the cache evicts an
// entry to honor its bound. It is not called for overwrite or Clear.
type OnEvict func(key string)

// LRU is a bounded keyed container with least-recently-used eviction.
// The order sequence always holds exactly the key set of the map: no
// orphans, no omissions. It is not safe for concurrent use; the manager
// confines access to its own lock.
type LRU[V any] struct {
	max     int
	entries map[string]V
	order   []string // least-recently-used first
	dispose Dispose[V]
	onEvict OnEvict
}

// New creates an LRU with the given bound. The bound must be at least 1;
// callers configure it through SetMax, which validates. dispose and
// onEvict may be nil.
func New[V any](max int, dispose Dispose[V], onEvict OnEvict) *LRU[V] {
	return &LRU[V]{
		max:     max,
		entries: make(map[string]V),
		dispose: dispose,
		onEvict: onEvict,
	}
}

// Get returns the payload for key without altering the access order.
func (c *LRU[V]) Get(key string) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Touch moves key to the most-recently-used position. It is a no-op when
// the key is absent.
func (c *LRU[V]) Touch(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	c.moveToTail(key)
}

// Insert stores the payload under key at the most-recently-used position.
// An existing payload under the same key is disposed first. If the cache
// then exceeds its bound, the least-recently-used entries are evicted
// until the bound holds again.
func (c *LRU[V]) Insert(key string, value V) {
	if old, ok := c.entries[key]; ok {
		if c.dispose != nil {
			c.dispose(key, old)
		}
		c.entries[key] = value
		c.moveToTail(key)
		return
	}

	c.entries[key] = value
	c.order = append(c.order, key)

	for len(c.entries) > c.max {
		c.EvictOldest()
	}
}

// Remove deletes key and returns its payload for caller-driven disposal.
// The cache never disposes what it returns.
func (c *LRU[V]) Remove(key string) (V, bool) {
	v, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(c.entries, key)
	c.deleteFromOrder(key)
	return v, true
}

// EvictOldest removes and disposes the least-recently-used entry and
// notifies the eviction callback with its key. It is a no-op on an empty
// cache.
func (c *LRU[V]) EvictOldest() {
	if len(c.order) == 0 {
		return
	}
	key := c.order[0]
	c.order = c.order[1:]

	v := c.entries[key]
	delete(c.entries, key)
	if c.dispose != nil {
		c.dispose(key, v)
	}
	if c.onEvict != nil {
		c.onEvict(key)
	}
}

// SetMax updates the bound and evicts from the least-recently-used end
// until the cache fits. Bounds below 1 are rejected.
func (c *LRU[V]) SetMax(n int) error {
	if n < 1 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "resizing cache"), "size", n)
	}
	c.max = n
	for len(c.entries) > c.max {
		c.EvictOldest()
	}
	return nil
}

// Max returns the current bound.
func (c *LRU[V]) Max() int {
	return c.max
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	return len(c.entries)
}

// Keys returns the keys in access order, least-recently-used first.
func (c *LRU[V]) Keys() []string {
	return slices.Clone(c.order)
}

// Clear disposes every payload and empties the cache. No eviction
// notifications are sent; clearing is not eviction.
func (c *LRU[V]) Clear() {
	if c.dispose != nil {
		for _, key := range c.order {
			c.dispose(key, c.entries[key])
		}
	}
	c.entries = make(map[string]V)
	c.order = c.order[:0]
}

func (c *LRU[V]) moveToTail(key string) {
	c.deleteFromOrder(key)
	c.order = append(c.order, key)
}

func (c *LRU[V]) deleteFromOrder(key string) {
	if i := slices.Index(c.order, key); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
}
