// Package repository maps entity collections onto slot store documents.
// Each collection is an in-memory slice loaded once from its slot and
// mirrored back as a whole JSON array after every mutation, the explicit
// load/save form of the legacy ambient persistence.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-api/internal/store"
)

// ErrNotFound is returned when an id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// Collection holds one entity type backed by one slot.
type Collection[T any] struct {
	store    store.Store
	slot     string
	keyOf    func(T) string
	onChange func()

	mu    sync.RWMutex
	items []T
}

// NewCollection builds an empty collection; call Load before first use.
// onChange fires after every successful mutation and may be nil.
func NewCollection[T any](st store.Store, slot string, keyOf func(T) string, onChange func()) *Collection[T] {
	return &Collection[T]{store: st, slot: slot, keyOf: keyOf, onChange: onChange}
}

// Load reads the slot into memory. A missing slot is an empty collection;
// a corrupt slot is logged and treated as empty, matching how the legacy
// loader recovered from unparseable state.
func (c *Collection[T]) Load(ctx context.Context) error {
	raw, found, err := c.store.Get(ctx, c.slot)
	if err != nil {
		return fmt.Errorf("failed to load collection %s: %w", c.slot, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	if !found || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &c.items); err != nil {
		log.Error().Err(err).Str("slot", c.slot).Msg("corrupt collection slot, starting empty")
		c.items = nil
	}
	return nil
}

// List returns a snapshot copy of the collection.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.keyOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Insert appends a record and mirrors the collection.
func (c *Collection[T]) Insert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return c.mirror(ctx)
}

// Update replaces the record with the same id.
func (c *Collection[T]) Update(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.keyOf(item)
	for i := range c.items {
		if c.keyOf(c.items[i]) == id {
			c.items[i] = item
			return c.mirror(ctx)
		}
	}
	return ErrNotFound
}

// Remove deletes the record with the given id. There is no soft delete
// and no cascade: dangling references in other collections are accepted.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if c.keyOf(item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return ErrNotFound
	}
	c.items = kept
	return c.mirror(ctx)
}

// Replace swaps the whole collection, used by backup import.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	return c.mirror(ctx)
}

// Clear removes every record.
func (c *Collection[T]) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return c.mirror(ctx)
}

// mirror writes the in-memory slice back to the slot. Callers hold the
// write lock.
func (c *Collection[T]) mirror(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.slot, err)
	}
	if err := c.store.Set(ctx, c.slot, string(raw)); err != nil {
		log.Error().Err(err).Str("slot", c.slot).Msg("failed to mirror collection")
		return err
	}
	if c.onChange != nil {
		c.onChange()
	}
	return nil
}
