// Package health provides health checking primitives for caches and the
// processes that host them.
//
// A Checker is any component that can report its health status. The Status
// type represents the health state: Healthy, Degraded, or Unhealthy.
//
// # Checking a Cache
//
// CacheChecker judges a cache's counters against configured thresholds:
//
//	check := health.NewCacheChecker("sessions", c, health.CacheCheckerConfig{
//	    MinHitRate:  50.0,
//	    MinRequests: 1000,
//	})
//
//	result := check.Check(ctx)
//	if result.Status == health.StatusDegraded {
//	    log.Printf("cache degraded: %s", result.Message)
//	}
//
// Any value with a Stats() method returning a stats.Snapshot can be
// checked; a *cache.System satisfies this directly.
//
// # Aggregating Health Checks
//
// Use Aggregator to combine multiple health checks into a single composite
// check:
//
//	agg := health.NewAggregator(health.AggregatorConfig{})
//	agg.Register("sessions", sessionCheck)
//	agg.Register("memory", memCheck)
//
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
package health
