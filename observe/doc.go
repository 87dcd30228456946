// Package observe provides observability primitives for cache operations.
//
// It is a pure instrumentation library: no caching, no transport, no I/O
// beyond exporter setup. Consumers wire the observer into a cache.System
// through Events (hit/miss/eviction telemetry) or Traced (instrumented
// loaders).
package observe
