package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records cache telemetry.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordHit records a lookup that found a live entry.
	RecordHit(ctx context.Context, meta CacheMeta)

	// RecordMiss records a lookup that found no live entry.
	RecordMiss(ctx context.Context, meta CacheMeta)

	// RecordEviction records an entry removed under capacity pressure.
	RecordEviction(ctx context.Context, meta CacheMeta)

	// RecordOp records a named cache operation with duration and error status.
	RecordOp(ctx context.Context, meta CacheMeta, op string, duration time.Duration, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter         metric.Meter
	hitCount      metric.Int64Counter
	missCount     metric.Int64Counter
	evictionCount metric.Int64Counter
	opCount       metric.Int64Counter
	opErrors      metric.Int64Counter
	opDuration    metric.Float64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	hitCount, err := meter.Int64Counter(
		"cache.hits.total",
		metric.WithDescription("Total number of cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	missCount, err := meter.Int64Counter(
		"cache.misses.total",
		metric.WithDescription("Total number of cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, err
	}

	evictionCount, err := meter.Int64Counter(
		"cache.evictions.total",
		metric.WithDescription("Total number of cache evictions"),
		metric.WithUnit("{eviction}"),
	)
	if err != nil {
		return nil, err
	}

	opCount, err := meter.Int64Counter(
		"cache.op.total",
		metric.WithDescription("Total number of cache operations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	opErrors, err := meter.Int64Counter(
		"cache.op.errors",
		metric.WithDescription("Total number of failed cache operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	opDuration, err := meter.Float64Histogram(
		"cache.op.duration_ms",
		metric.WithDescription("Cache operation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:         meter,
		hitCount:      hitCount,
		missCount:     missCount,
		evictionCount: evictionCount,
		opCount:       opCount,
		opErrors:      opErrors,
		opDuration:    opDuration,
	}, nil
}

// RecordHit increments the hit counter.
func (m *metricsImpl) RecordHit(ctx context.Context, meta CacheMeta) {
	m.hitCount.Add(ctx, 1, metric.WithAttributes(meta.attributes()...))
}

// RecordMiss increments the miss counter.
func (m *metricsImpl) RecordMiss(ctx context.Context, meta CacheMeta) {
	m.missCount.Add(ctx, 1, metric.WithAttributes(meta.attributes()...))
}

// RecordEviction increments the eviction counter.
func (m *metricsImpl) RecordEviction(ctx context.Context, meta CacheMeta) {
	m.evictionCount.Add(ctx, 1, metric.WithAttributes(meta.attributes()...))
}

// RecordOp records counters and duration for a named operation.
func (m *metricsImpl) RecordOp(ctx context.Context, meta CacheMeta, op string, duration time.Duration, err error) {
	attrs := append(meta.attributes(), attribute.String("cache.op", op))
	opt := metric.WithAttributes(attrs...)

	// Always increment the op counter
	m.opCount.Add(ctx, 1, opt)

	// Increment the error counter on failure
	if err != nil {
		m.opErrors.Add(ctx, 1, opt)
	}

	// Record duration in milliseconds
	m.opDuration.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordHit(ctx context.Context, meta CacheMeta)      {}
func (m *noopMetrics) RecordMiss(ctx context.Context, meta CacheMeta)     {}
func (m *noopMetrics) RecordEviction(ctx context.Context, meta CacheMeta) {}
func (m *noopMetrics) RecordOp(ctx context.Context, meta CacheMeta, op string, duration time.Duration, err error) {
}

// Ensure both implementations satisfy Metrics
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = (*noopMetrics)(nil)
)
