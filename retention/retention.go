// Package retention tracks entry lifetimes for the cache: when each key was
// created, when it was last touched, whether it has outlived the TTL, and
// which key the configured eviction strategy would remove next.
package retention

import (
	"maps"
	"sync"
	"time"

	"github.com/bongtzeyaw/cachekit/evict"
)

// Manager owns the creation-time and access-time bookkeeping for resident
// keys and answers expiry and victim-selection questions.
//
// Contract:
// - Concurrency: all methods are safe for concurrent use. One internal lock
//   serializes access to both maps, so victim selection can never observe a
//   half-updated view of the timestamps.
// - Key set: callers route every insert and delete through both the storage
//   layer and this manager; the two key sets stay equal.
type Manager struct {
	mu       sync.Mutex
	created  map[string]time.Time
	accessed map[string]time.Time
	ttl      time.Duration
	strategy evict.Strategy

	now func() time.Time // test hook
}

// NewManager creates a manager applying ttl to every entry and consulting
// strategy for eviction victims.
func NewManager(ttl time.Duration, strategy evict.Strategy) *Manager {
	return &Manager{
		created:  make(map[string]time.Time),
		accessed: make(map[string]time.Time),
		ttl:      ttl,
		strategy: strategy,
		now:      time.Now,
	}
}

// Expired reports whether key's age exceeds the TTL. A key with no recorded
// creation time is simply absent, never expired.
func (m *Manager) Expired(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	created, ok := m.created[key]
	if !ok {
		return false
	}
	return m.now().Sub(created) > m.ttl
}

// RecordCreation stamps both the creation and access time of key with the
// current time. Called on insert; re-recording an existing key restarts its
// lifetime.
func (m *Manager) RecordCreation(key string) {
	m.mu.Lock()
	now := m.now()
	m.created[key] = now
	m.accessed[key] = now
	m.mu.Unlock()
}

// RecordAccess refreshes only the last-access time of key. Called on read
// hits. Keys with no recorded creation are ignored: a refresh racing a
// concurrent delete must not leave bookkeeping behind for a key storage no
// longer holds.
func (m *Manager) RecordAccess(key string) {
	m.mu.Lock()
	if _, ok := m.created[key]; ok {
		m.accessed[key] = m.now()
	}
	m.mu.Unlock()
}

// Delete drops the bookkeeping for key.
func (m *Manager) Delete(key string) {
	m.mu.Lock()
	delete(m.created, key)
	delete(m.accessed, key)
	m.mu.Unlock()
}

// Clear drops the bookkeeping for every key.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.created = make(map[string]time.Time)
	m.accessed = make(map[string]time.Time)
	m.mu.Unlock()
}

// Victim asks the configured strategy which key to evict next. The strategy
// receives a copy of the access-time map taken under the lock, so an
// implementation that wrongly retains its input cannot race later updates.
// Returns ("", false) when nothing is tracked.
func (m *Manager) Victim() (string, bool) {
	m.mu.Lock()
	snapshot := maps.Clone(m.accessed)
	m.mu.Unlock()
	return m.strategy.Victim(snapshot)
}

// TTL returns the lifetime applied to every entry.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
