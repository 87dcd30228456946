// Package evict provides eviction policies for bounded caches.
//
// A Strategy inspects the last-access times of resident keys and names the
// key that should go when the cache needs room. Policies are pure: they hold
// no state of their own and never mutate their input.
package evict

import (
	"fmt"
	"strings"
	"time"
)

// Strategy selects the key to evict when a cache is at capacity.
//
// Contract:
// - Purity: implementations must not mutate accessTimes or retain it.
// - Concurrency: implementations must be safe for concurrent use.
// - Empty input: Victim returns ("", false) when accessTimes is empty.
type Strategy interface {
	// Victim returns the key that should be evicted next.
	Victim(accessTimes map[string]time.Time) (string, bool)
}

// StrategyFunc adapts an ordinary function to a Strategy.
type StrategyFunc func(accessTimes map[string]time.Time) (string, bool)

// Victim calls f.
func (f StrategyFunc) Victim(accessTimes map[string]time.Time) (string, bool) {
	return f(accessTimes)
}

// LRU evicts the least recently used key: the one with the oldest
// last-access time. Ties break to the lexically smaller key so selection is
// deterministic regardless of map iteration order.
type LRU struct{}

// Victim returns the key with the oldest access time.
func (LRU) Victim(accessTimes map[string]time.Time) (string, bool) {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for key, at := range accessTimes {
		if !found || at.Before(oldest) || (at.Equal(oldest) && key < victim) {
			victim, oldest, found = key, at, true
		}
	}
	return victim, found
}

// MRU evicts the most recently used key: the one with the newest last-access
// time. Useful for cyclic scans, where the entry touched a moment ago is the
// one least likely to be needed again soon. Ties break to the lexically
// smaller key.
type MRU struct{}

// Victim returns the key with the newest access time.
func (MRU) Victim(accessTimes map[string]time.Time) (string, bool) {
	var (
		victim string
		newest time.Time
		found  bool
	)
	for key, at := range accessTimes {
		if !found || at.After(newest) || (at.Equal(newest) && key < victim) {
			victim, newest, found = key, at, true
		}
	}
	return victim, found
}

// Parse returns the built-in strategy with the given name. Names are
// case-insensitive; the empty string means LRU.
func Parse(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "lru", "":
		return LRU{}, nil
	case "mru":
		return MRU{}, nil
	default:
		return nil, fmt.Errorf("evict: unknown strategy %q", name)
	}
}

// Ensure the built-in policies implement Strategy
var (
	_ Strategy = LRU{}
	_ Strategy = MRU{}
	_ Strategy = (StrategyFunc)(nil)
)
