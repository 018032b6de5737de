// internal/app/system/listview/controller.go
package listview

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Record is implemented by every entity a Controller can hold.
// RecordKey must be unique within one collection.
type Record interface {
	RecordKey() string
}

// Source is the list operation of an API client for one entity type.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

// List calls f(ctx).
func (f SourceFunc[T]) List(ctx context.Context) ([]T, error) { return f(ctx) }

// Snapshot is a consistent copy of a controller's state at one instant.
type Snapshot[T any] struct {
	State FetchState
	Items []T
	Err   error
}

// Controller owns the fetch, store and mutate cycle for one collection.
//
// Every Load is stamped with a sequence number. A response is committed only
// if no newer Load was issued while it was in flight and the controller has
// not been closed, so overlapping loads resolve to the last one issued.
//
// The collection is copy-on-write: Items and Snapshot hand out slices that
// later loads or mutations never modify.
type Controller[T Record] struct {
	name string
	src  Source[T]
	log  *zap.Logger

	mu     sync.Mutex
	items  []T
	state  FetchState
	err    error
	seq    uint64
	closed bool
}

// New returns an idle controller with an empty collection.
// name identifies the collection in logs (e.g. "products").
func New[T Record](name string, src Source[T], logger *zap.Logger) *Controller[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller[T]{
		name:  name,
		src:   src,
		log:   logger,
		items: []T{},
		state: Idle,
	}
}

// Load fetches the collection from the source and replaces it wholesale.
// On failure the collection is cleared, the state becomes Error and the
// failure is logged. Load never retries and never panics on source errors.
func (c *Controller[T]) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	c.state = Loading
	c.mu.Unlock()

	items, err := c.src.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.log.Debug("discarding list response after close",
			zap.String("collection", c.name), zap.Uint64("seq", seq))
		return
	}
	if seq != c.seq {
		c.log.Debug("discarding stale list response",
			zap.String("collection", c.name),
			zap.Uint64("seq", seq),
			zap.Uint64("latest", c.seq))
		return
	}

	if err != nil {
		c.log.Warn("list fetch failed",
			zap.String("collection", c.name), zap.Error(err))
		c.items = []T{}
		c.state = Error
		c.err = err
		return
	}

	if items == nil {
		items = []T{}
	}
	c.items = items
	c.state = Success
	c.err = nil
}

// State returns the current fetch state.
func (c *Controller[T]) State() FetchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the failure recorded by the last committed Load, if any.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Items returns the current collection. Callers must not modify the slice.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Snapshot returns the state, collection and error together.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot[T]{State: c.state, Items: c.items, Err: c.err}
}

// Filtered applies f to the current collection.
func (c *Controller[T]) Filtered(f Filters[T], st FilterState) []T {
	return f.Apply(c.Items(), st)
}

// MutateOne replaces the record whose key is id with patch(record).
// It reports whether a record was found; an unknown id leaves the
// collection untouched. The caller must have confirmed the corresponding
// write against the backend.
func (c *Controller[T]) MutateOne(id string, patch func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.items, func(rec T) bool { return rec.RecordKey() == id })
	if i < 0 {
		return false
	}

	next := slices.Clone(c.items)
	next[i] = patch(next[i])
	c.items = next
	return true
}

// Find returns the record with the given key.
func (c *Controller[T]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rec := range c.items {
		if rec.RecordKey() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Close tears the controller down. In-flight responses are discarded and
// further loads are ignored. Close is safe to call more than once.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
