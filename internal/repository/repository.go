package repository

import (
	"encoding/json"
	"fmt"

	"github.com/shifahealth/clinic-portal/internal/storage"
	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

// Entity is anything with a stable string identity.
type Entity interface {
	EntityID() string
}

// Collection provides identity-keyed operations over one named
// collection in the store. It is the only update primitive: callers
// build a full new value and Put it back.
//
// Operations are read-modify-write over the whole collection and are
// safe only under the single-writer assumption of one process.
type Collection[T Entity] struct {
	store   *storage.Store
	name    string
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewCollection[T Entity](store *storage.Store, name string, log *logger.Logger, m *metrics.Metrics) *Collection[T] {
	return &Collection[T]{store: store, name: name, logger: log, metrics: m}
}

// Name returns the collection's storage key.
func (c *Collection[T]) Name() string { return c.name }

// All returns the collection in storage order. A missing or corrupt
// blob decodes to an empty slice, never an error.
func (c *Collection[T]) All() []T {
	blob := c.store.Get(c.name)
	if blob == nil {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		c.metrics.StoreCorruptBlobs.WithLabelValues(c.name).Inc()
		c.logger.Warn("corrupt collection blob, recovering as empty", "collection", c.name, "error", err.Error())
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(items []T) error {
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.name, err)
	}
	return c.store.Set(c.name, blob)
}

// Put upserts by identity: an item with a matching id is replaced in
// place, preserving its position; otherwise the item is appended.
func (c *Collection[T]) Put(item T) error {
	items := c.All()
	replaced := false
	for i := range items {
		if items[i].EntityID() == item.EntityID() {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return c.Replace(items)
}

// Delete removes the item with the given id. Absence is a no-op.
func (c *Collection[T]) Delete(id string) error {
	items := c.All()
	filtered := items[:0:0]
	for _, item := range items {
		if item.EntityID() != id {
			filtered = append(filtered, item)
		}
	}
	return c.Replace(filtered)
}

// Find returns the first item with the given id. Absence is a normal
// result, not an error.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, item := range c.All() {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
