package stats

import "sync"

// Counter accumulates cache lookup outcomes.
//
// Contract:
//   - Concurrency: all methods are safe for concurrent use.
//   - HitRate is expressed as a percentage in [0, 100]; it reports 0
//     before any lookup has been recorded.
type Counter struct {
	mu     sync.Mutex
	hits   uint64
	misses uint64
}

// NewCounter returns a Counter with zeroed totals.
func NewCounter() *Counter {
	return &Counter{}
}

// RecordHit adds one successful lookup.
func (c *Counter) RecordHit() {
	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
}

// RecordMiss adds one failed lookup.
func (c *Counter) RecordMiss() {
	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
}

// RecordHits adds n successful lookups in one step. Values of n less
// than one are ignored.
func (c *Counter) RecordHits(n int) {
	if n <= 0 {
		return
	}
	c.mu.Lock()
	c.hits += uint64(n)
	c.mu.Unlock()
}

// RecordMisses adds n failed lookups in one step. Values of n less
// than one are ignored.
func (c *Counter) RecordMisses(n int) {
	if n <= 0 {
		return
	}
	c.mu.Lock()
	c.misses += uint64(n)
	c.mu.Unlock()
}

// Clear resets both totals to zero.
func (c *Counter) Clear() {
	c.mu.Lock()
	c.hits = 0
	c.misses = 0
	c.mu.Unlock()
}

// Hits reports the number of successful lookups recorded.
func (c *Counter) Hits() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

// Misses reports the number of failed lookups recorded.
func (c *Counter) Misses() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}

// HitRate reports the percentage of lookups that were hits.
func (c *Counter) HitRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total) * 100
}
