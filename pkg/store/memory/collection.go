package memory

import (
	"sync"
	"time"
)

// Collection is an ordered, key-indexed set of records. Records iterate in
// first-seen order: an upsert matching an existing key replaces the record
// in place, an upsert with a new key appends. Every accepted record is
// stamped with the ingestion time, overwriting any caller-supplied value.
//
// All methods are safe for concurrent use; Upsert performs its
// find-then-replace-or-append as a single atomic step.
type Collection[T any] struct {
	mu    sync.RWMutex
	keys  []string
	items map[string]T
	keyOf func(T) string
	stamp func(*T, time.Time)
	clock func() time.Time
}

func newCollection[T any](clock func() time.Time, keyOf func(T) string, stamp func(*T, time.Time)) *Collection[T] {
	return &Collection[T]{
		items: make(map[string]T),
		keyOf: keyOf,
		stamp: stamp,
		clock: clock,
	}
}

// Upsert merges rec into the collection by its natural key and reports
// whether an existing record was replaced.
func (c *Collection[T]) Upsert(rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stamp(&rec, c.clock())

	key := c.keyOf(rec)
	_, exists := c.items[key]
	if !exists {
		c.keys = append(c.keys, key)
	}
	c.items[key] = rec
	return exists
}

// Get looks a record up by its natural key.
func (c *Collection[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.items[key]
	return rec, ok
}

// List returns a snapshot of the collection in first-seen order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, c.items[key])
	}
	return out
}

// Len returns the number of records currently held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.keys)
}
