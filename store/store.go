// Package store implements the storage layer of the cache: a mutex-guarded
// map with occupancy accounting and an approximate memory estimate. It
// enforces nothing beyond its own consistency; eviction and expiry decisions
// belong to the layers above.
package store

import (
	"fmt"
	"sync"
)

// Store is a concurrency-safe key/value map with a fixed capacity bound.
// It reports when the bound is reached but never evicts on its own.
//
// Contract:
// - Concurrency: all methods are safe for concurrent use.
// - Errors: absence is (zero, false) or false, never an error.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	maxSize int
}

// New creates an empty store bounded to maxSize entries.
func New[V any](maxSize int) *Store[V] {
	return &Store[V]{
		entries: make(map[string]V),
		maxSize: maxSize,
	}
}

// Get returns the value stored under key. Returns (zero, false) on miss.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Store[V]) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[key]
	return ok
}

// Set inserts or replaces the value under key.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// Delete removes key and reports whether an entry was actually removed.
func (s *Store[V]) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// Clear removes every entry.
func (s *Store[V]) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]V)
	s.mu.Unlock()
}

// Size returns the number of resident entries.
func (s *Store[V]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// MaxSize returns the capacity bound fixed at construction.
func (s *Store[V]) MaxSize() int {
	return s.maxSize
}

// CapacityReached reports whether the store is at or over its bound.
func (s *Store[V]) CapacityReached() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries) >= s.maxSize
}

// MemoryUsage estimates resident bytes as the sum, over all entries, of the
// key length plus the length of the value rendered as a string. This is an
// estimate for reporting, not an exact account of heap usage, and it costs a
// full scan under the read lock.
func (s *Store[V]) MemoryUsage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for k, v := range s.entries {
		total += len(k) + len(fmt.Sprint(v))
	}
	return total
}
