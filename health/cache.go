package health

import (
	"context"
	"fmt"

	"github.com/bongtzeyaw/cachekit/stats"
)

// StatsSource exposes a point-in-time view of cache counters.
// A *cache.System satisfies this interface.
type StatsSource interface {
	Stats() stats.Snapshot
}

// CacheCheckerConfig configures the cache health checker.
type CacheCheckerConfig struct {
	// MinHitRate is the hit-rate percentage below which the cache is
	// reported degraded. Zero disables the hit-rate check.
	// Default: 0 (disabled)
	MinHitRate float64

	// MinRequests is the number of lookups required before the hit rate
	// is judged. A cold cache always has a poor hit rate.
	// Default: 100
	MinRequests uint64

	// MaxMemoryBytes is the estimated memory footprint above which the
	// cache is reported unhealthy. Zero disables the memory check.
	// Default: 0 (disabled)
	MaxMemoryBytes int
}

// CacheChecker reports the health of a single cache instance by reading
// its counters and judging them against configured thresholds.
type CacheChecker struct {
	name   string
	source StatsSource
	config CacheCheckerConfig
}

// NewCacheChecker creates a health checker for the named cache.
func NewCacheChecker(name string, source StatsSource, config CacheCheckerConfig) *CacheChecker {
	if config.MinHitRate < 0 {
		config.MinHitRate = 0
	}
	if config.MinHitRate > 100 {
		config.MinHitRate = 100
	}
	if config.MinRequests == 0 {
		config.MinRequests = 100
	}

	return &CacheChecker{
		name:   name,
		source: source,
		config: config,
	}
}

// Name returns the name of this checker.
func (c *CacheChecker) Name() string {
	return c.name
}

// Check reads the cache counters and judges them against the thresholds.
// Entry count never exceeds capacity, so the unbounded axes are what get
// thresholds: hit rate and the estimated memory footprint.
func (c *CacheChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	snap := c.source.Stats()
	requests := snap.Hits + snap.Misses

	details := map[string]any{
		"size":         snap.Size,
		"max_size":     snap.MaxSize,
		"hits":         snap.Hits,
		"misses":       snap.Misses,
		"hit_rate":     snap.HitRate,
		"memory_bytes": snap.MemoryBytes,
	}
	if snap.MaxSize > 0 {
		details["occupancy_percent"] = float64(snap.Size) / float64(snap.MaxSize) * 100
	}

	if c.config.MaxMemoryBytes > 0 && snap.MemoryBytes > c.config.MaxMemoryBytes {
		return Unhealthy(
			fmt.Sprintf("cache memory %d bytes exceeds limit %d", snap.MemoryBytes, c.config.MaxMemoryBytes),
			ErrCheckFailed,
		).WithDetails(details)
	}

	if c.config.MinHitRate > 0 && requests >= c.config.MinRequests && snap.HitRate < c.config.MinHitRate {
		return Degraded(
			fmt.Sprintf("hit rate %.2f%% below %.2f%%", snap.HitRate, c.config.MinHitRate),
		).WithDetails(details)
	}

	return Healthy(
		fmt.Sprintf("cache serving %d/%d entries", snap.Size, snap.MaxSize),
	).WithDetails(details)
}
