package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jwalitptl/clinic-api/internal/store"
)

// Document holds a single-value slot, such as the center settings. A
// slot that was never written reads as the zero value.
type Document[T any] struct {
	store store.Store
	slot  string

	mu    sync.RWMutex
	value T
}

func NewDocument[T any](st store.Store, slot string) *Document[T] {
	return &Document[T]{store: st, slot: slot}
}

// Load reads the slot. A missing or corrupt slot leaves the zero value.
func (d *Document[T]) Load(ctx context.Context) error {
	raw, found, err := d.store.Get(ctx, d.slot)
	if err != nil {
		return fmt.Errorf("failed to load document %s: %w", d.slot, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	var zero T
	d.value = zero
	if !found || raw == "" {
		return nil
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil
	}
	d.value = v
	return nil
}

func (d *Document[T]) Get() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

// Set stores and mirrors a new value.
func (d *Document[T]) Set(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", d.slot, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.store.Set(ctx, d.slot, string(raw)); err != nil {
		return err
	}
	d.value = v
	return nil
}

// Clear removes the stored value.
func (d *Document[T]) Clear(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.store.Delete(ctx, d.slot); err != nil {
		return err
	}
	var zero T
	d.value = zero
	return nil
}
