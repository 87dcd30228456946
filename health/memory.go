package health

import (
	"context"
	"fmt"
	"runtime"
)

// MemoryCheckerConfig configures the process memory checker.
type MemoryCheckerConfig struct {
	// WarningThreshold is the fraction of the allocation budget that
	// triggers degraded status. Must be in (0, 1). Default: 0.8
	WarningThreshold float64

	// CriticalThreshold is the fraction of the allocation budget that
	// triggers unhealthy status. Must be in (0, 1). Default: 0.95
	CriticalThreshold float64

	// MaxAlloc is the allocation budget in bytes. Zero means judge
	// against the memory obtained from the OS (runtime Sys).
	// Default: 0
	MaxAlloc uint64
}

func (c MemoryCheckerConfig) normalized() MemoryCheckerConfig {
	if c.WarningThreshold <= 0 || c.WarningThreshold >= 1 {
		c.WarningThreshold = 0.8
	}
	if c.CriticalThreshold <= 0 || c.CriticalThreshold >= 1 {
		c.CriticalThreshold = 0.95
	}
	if c.CriticalThreshold < c.WarningThreshold {
		c.CriticalThreshold = c.WarningThreshold + 0.1
		if c.CriticalThreshold > 1 {
			c.CriticalThreshold = 0.99
		}
	}
	return c
}

// MemoryChecker checks process memory health. An in-process cache is
// usually the dominant heap consumer, so this pairs naturally with a
// CacheChecker in one aggregator.
type MemoryChecker struct {
	config MemoryCheckerConfig
}

// NewMemoryChecker creates a new memory health checker.
func NewMemoryChecker(config MemoryCheckerConfig) *MemoryChecker {
	return &MemoryChecker{config: config.normalized()}
}

// Name returns the name of this checker.
func (m *MemoryChecker) Name() string {
	return "memory"
}

// Check reads runtime memory statistics and judges heap allocation
// against the configured budget.
func (m *MemoryChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	budget := m.config.MaxAlloc
	if budget == 0 {
		budget = ms.Sys
	}
	if budget == 0 {
		return Healthy("memory stats unavailable").WithDetails(map[string]any{
			"alloc_bytes": ms.Alloc,
			"num_gc":      ms.NumGC,
		})
	}

	usage := float64(ms.Alloc) / float64(budget)

	details := map[string]any{
		"alloc_bytes":   ms.Alloc,
		"alloc_mb":      float64(ms.Alloc) / (1024 * 1024),
		"max_alloc":     budget,
		"usage_percent": usage * 100,
		"heap_alloc":    ms.HeapAlloc,
		"heap_objects":  ms.HeapObjects,
		"num_gc":        ms.NumGC,
		"goroutines":    runtime.NumGoroutine(),
	}

	switch {
	case usage >= m.config.CriticalThreshold:
		return Unhealthy(
			fmt.Sprintf("memory usage critical: %.1f%%", usage*100),
			ErrCheckFailed,
		).WithDetails(details)
	case usage >= m.config.WarningThreshold:
		return Degraded(
			fmt.Sprintf("memory usage high: %.1f%%", usage*100),
		).WithDetails(details)
	default:
		return Healthy(
			fmt.Sprintf("memory usage normal: %.1f%%", usage*100),
		).WithDetails(details)
	}
}
