package observe

import (
	"context"
	"time"
)

// LoadFunc is the signature for value-producing functions. It matches
// the loader shape a cache.System accepts, so a wrapped LoadFunc can be
// passed straight to GetOrLoad.
type LoadFunc[V any] func(ctx context.Context) (V, error)

// Middleware instruments cache loads with tracing, metrics, and logging
// for one cache instance.
//
// Contract:
//   - Concurrency: Traced() returns a thread-safe LoadFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from the wrapped function are recorded and propagated unchanged.
//   - Ownership: Loaded values are passed through without modification.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
	meta    CacheMeta
}

// NewMiddleware creates a new Middleware with the given observability
// components, bound to the cache described by meta.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger, meta CacheMeta) (*Middleware, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger.WithCache(meta),
		meta:    meta,
	}, nil
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer, meta CacheMeta) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger(), meta)
}

// Traced wraps fn with tracing, metrics, and logging under the named
// operation. The returned function records a span per call, feeds the
// operation counters and duration histogram, and logs the outcome.
func Traced[V any](m *Middleware, op string, fn LoadFunc[V]) LoadFunc[V] {
	return func(ctx context.Context) (V, error) {
		// Start span
		ctx, span := m.tracer.StartSpan(ctx, m.meta, op)

		start := time.Now()
		value, err := fn(ctx)
		duration := time.Since(start)

		// End span (records error status if err != nil)
		m.tracer.EndSpan(span, err)

		// Record metrics
		m.metrics.RecordOp(ctx, m.meta, op, duration, err)

		// Log the outcome
		fields := []Field{
			{Key: "op", Value: op},
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			m.logger.Error(ctx, "cache load failed", fields...)
		} else {
			m.logger.Debug(ctx, "cache load completed", fields...)
		}

		return value, err
	}
}
