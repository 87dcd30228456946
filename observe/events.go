package observe

import "context"

// Events forwards cache lifecycle events to metrics and logs. Its
// method set matches the event logger a cache.System accepts, so an
// Events value can be wired in directly as the cache's Logger.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: events are best-effort and never fail the cache operation.
type Events struct {
	metrics Metrics
	logger  Logger
	meta    CacheMeta
}

// NewEvents creates an Events bridge for the cache described by meta.
func NewEvents(metrics Metrics, logger Logger, meta CacheMeta) (*Events, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return &Events{
		metrics: metrics,
		logger:  logger.WithCache(meta),
		meta:    meta,
	}, nil
}

// EventsFromObserver creates an Events bridge from an Observer.
// This is a convenience function for common use cases.
func EventsFromObserver(obs Observer, meta CacheMeta) (*Events, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewEvents(metrics, obs.Logger(), meta)
}

// Hit records a cache hit for key.
func (e *Events) Hit(ctx context.Context, key string) {
	e.metrics.RecordHit(ctx, e.meta)
	e.logger.Debug(ctx, "cache hit", Field{Key: "key", Value: key})
}

// Miss records a cache miss for key.
func (e *Events) Miss(ctx context.Context, key string) {
	e.metrics.RecordMiss(ctx, e.meta)
	e.logger.Debug(ctx, "cache miss", Field{Key: "key", Value: key})
}

// Evict records an eviction of key.
func (e *Events) Evict(ctx context.Context, key string) {
	e.metrics.RecordEviction(ctx, e.meta)
	e.logger.Info(ctx, "cache eviction", Field{Key: "key", Value: key})
}
