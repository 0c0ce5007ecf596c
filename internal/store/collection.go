package store

import "time"

// Collection binds a slice of records to a named slot. Every mutation
// reads the full collection, transforms it in memory and writes the whole
// thing back.
type Collection[T any] struct {
	store *Store
	slot  string
}

func NewCollection[T any](s *Store, slot string) *Collection[T] {
	return &Collection[T]{store: s, slot: slot}
}

func (c *Collection[T]) Slot() string {
	return c.slot
}

// All returns the persisted records, or an empty slice when the slot is
// absent or corrupted.
func (c *Collection[T]) All() []T {
	items := []T{}
	c.store.Read(c.slot, &items)
	return items
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(items []T) {
	c.store.Write(c.slot, items)
}

// Mutate applies fn to the current records and persists the result. When
// fn returns an error nothing is written. The whole read-transform-write
// cycle runs under the store lock, so concurrent mutations of the same
// slot never lose each other's records.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items := []T{}
	c.store.readLocked(c.slot, &items)

	items, err := fn(items)
	if err != nil {
		return err
	}
	c.store.writeLocked(c.slot, items)
	return nil
}

// NextID returns a fresh record id: the current Unix-millisecond timestamp,
// bumped past the highest existing id when the timestamp collides with one
// already in use (two saves inside the same millisecond).
func NextID(existing []int64) int64 {
	id := time.Now().UnixMilli()
	for _, e := range existing {
		if e >= id {
			id = e + 1
		}
	}
	return id
}
