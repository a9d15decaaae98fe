// Package listview implements the fetch → filter → paginate pattern
// shared by every list screen. A Collection caches the full result of
// one backend fetch; filtering and pagination are computed per request
// against that in-memory snapshot, and mutating actions rewrite single
// cached records in place instead of re-fetching the collection.
package listview

import (
	"context"
	"strings"
	"sync"
)

// DefaultPageSize is the fixed page size used by every screen.
const DefaultPageSize = 10

// State is the lifecycle of a collection.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// FetchFunc loads the full collection from the backend.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Collection holds one fetched collection in memory. The only recovery
// path from a failed fetch is Reset, which models a screen remount.
type Collection[T any] struct {
	mu    sync.Mutex
	state State
	items []T
	err   error
	fetch FetchFunc[T]
}

func NewCollection[T any](fetch FetchFunc[T]) *Collection[T] {
	return &Collection[T]{fetch: fetch}
}

// Load fetches the collection on first access and returns the cached
// snapshot afterwards. A failed collection stays failed until Reset.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	switch c.state {
	case StateLoaded:
		items := c.snapshot()
		c.mu.Unlock()
		return items, nil
	case StateFailed:
		err := c.err
		c.mu.Unlock()
		return nil, err
	case StateLoading:
		// A concurrent request beat us to the fetch; report loading so
		// the caller can surface the transient indicator.
		c.mu.Unlock()
		return nil, ErrLoading
	}
	c.state = StateLoading
	fetch := c.fetch
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateFailed
		c.err = err
		return nil, err
	}
	c.state = StateLoaded
	c.items = items
	c.err = nil
	return c.snapshot(), nil
}

// SetFetch swaps the fetch function used by the next load.
func (c *Collection[T]) SetFetch(fetch FetchFunc[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetch = fetch
}

// Reset returns the collection to Idle, discarding cached items and any
// recorded failure. Navigating back to a screen resets its collection.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle
	c.items = nil
	c.err = nil
}

func (c *Collection[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Update rewrites the first record matching match and reports whether a
// record was found. No other record is touched.
func (c *Collection[T]) Update(match func(T) bool, apply func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if match(item) {
			c.items[i] = apply(item)
			return true
		}
	}
	return false
}

// Prepend inserts a newly created record at the head of the collection.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
	if c.state == StateIdle {
		c.state = StateLoaded
	}
}

// Find returns the first record matching match from the cached snapshot.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) snapshot() []T {
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// ErrLoading is returned while a fetch for the same collection is
// already in flight.
var ErrLoading = &loadingError{}

type loadingError struct{}

func (*loadingError) Error() string { return "collection is still loading" }

// Filter is a pure predicate over one field of a record. Active filters
// compose with logical AND.
type Filter[T any] func(T) bool

// Text matches when the field contains value, case-insensitively. An
// empty value matches everything, mirroring a cleared search box.
func Text[T any](value string, field func(T) string) Filter[T] {
	needle := strings.ToLower(strings.TrimSpace(value))
	return func(item T) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(field(item)), needle)
	}
}

// Exact matches the field verbatim, used for enum and date filters. An
// empty value matches everything.
func Exact[T any](value string, field func(T) string) Filter[T] {
	return func(item T) bool {
		if value == "" {
			return true
		}
		return field(item) == value
	}
}

// Apply returns the records satisfying every filter, preserving order.
func Apply[T any](items []T, filters ...Filter[T]) []T {
	filtered := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, keep := range filters {
			if !keep(item) {
				continue outer
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// Page is one window over a filtered collection.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Index      int  `json:"page"`
	Size       int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Paginate slices items into the fixed-size page at the zero-based
// index. An index past the end of the filtered set falls back to the
// first page, so a narrowed filter never leaves the view stranded on a
// page that no longer exists.
func Paginate[T any](items []T, index, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if index < 0 || index*size >= len(items) {
		index = 0
	}

	start := index * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	totalPages := (len(items) + size - 1) / size

	return Page[T]{
		Items:      items[start:end],
		Index:      index,
		Size:       size,
		TotalItems: len(items),
		TotalPages: totalPages,
		HasNext:    (index+1)*size < len(items),
		HasPrev:    index > 0,
	}
}
