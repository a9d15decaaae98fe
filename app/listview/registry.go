package listview

import (
	"strings"
	"sync"
)

// Registry keys collections by admin email so each signed-in admin gets
// an isolated in-memory snapshot of a resource. Sub-view registries use
// composite "admin|subject" keys; DropPrefix evicts those when the
// parent screen remounts so entries do not pile up for the process
// lifetime.
type Registry[T any] struct {
	mu          sync.Mutex
	collections map[string]*Collection[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{collections: make(map[string]*Collection[T])}
}

// Get returns the collection for key, creating it on first use. The
// fetch function is rebound on every call so a renewed session token is
// picked up by the next load.
func (r *Registry[T]) Get(key string, fetch FetchFunc[T]) *Collection[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.collections[key]; ok {
		c.SetFetch(fetch)
		return c
	}
	c := NewCollection(fetch)
	r.collections[key] = c
	return c
}

// Reset drops the cached collection for key so the next access fetches
// fresh data. Used when a screen is (re)entered.
func (r *Registry[T]) Reset(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.collections[key]; ok {
		c.Reset()
	}
}

// DropPrefix evicts every collection whose key starts with prefix.
func (r *Registry[T]) DropPrefix(prefix string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.collections {
		if strings.HasPrefix(key, prefix) {
			delete(r.collections, key)
		}
	}
}
