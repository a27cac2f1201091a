// AngelaMos | 2026
// collection.go

// Package store holds the in-memory collections backing fallback mode.
package store

import (
	"slices"
	"sync"
	"time"
)

// Collection is an append-only, mutex-guarded slice. Reads hand out copies
// so callers never alias the backing array.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

func NewCollection[T any](seed ...T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(seed)}
}

func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
}

// AppendUnless appends item unless an existing element satisfies conflict.
// The check and the append happen under one lock.
func (c *Collection[T]) AppendUnless(item T, conflict func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.ContainsFunc(c.items, conflict) {
		return false
	}

	c.items = append(c.items, item)
	return true
}

func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := slices.IndexFunc(c.items, match)
	if idx < 0 {
		var zero T
		return zero, false
	}

	return c.items[idx], true
}

// Filter returns matching elements in insertion order.
func (c *Collection[T]) Filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}

	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Entity is a record owned by a single user and placed on a time line.
type Entity interface {
	EntityID() string
	OwnerID() string
	RecordedAt() time.Time
}

// Timeline is a Collection of user-owned records with the same query
// semantics as the Postgres repositories.
type Timeline[T Entity] struct {
	*Collection[T]
}

func NewTimeline[T Entity](seed ...T) *Timeline[T] {
	return &Timeline[T]{Collection: NewCollection(seed...)}
}

// AllFor returns the owner's records in insertion order.
func (t *Timeline[T]) AllFor(ownerID string) []T {
	return t.Filter(func(item T) bool {
		return item.OwnerID() == ownerID
	})
}

// Window returns the owner's records newest first, cut to page, plus the
// owner's total record count.
func (t *Timeline[T]) Window(ownerID string, page Page) ([]T, int) {
	owned := t.AllFor(ownerID)
	slices.SortStableFunc(owned, NewestFirst[T])

	return Apply(page, owned), len(owned)
}

// NewestFirst orders by RecordedAt descending, then ID descending, matching
// ORDER BY recorded_at DESC, id DESC.
func NewestFirst[T Entity](a, b T) int {
	if c := b.RecordedAt().Compare(a.RecordedAt()); c != 0 {
		return c
	}

	switch {
	case a.EntityID() > b.EntityID():
		return -1
	case a.EntityID() < b.EntityID():
		return 1
	default:
		return 0
	}
}
