// Package cache provides a bounded in-memory key/value cache with TTL
// expiration, pluggable eviction, and hit/miss accounting.
//
// It provides a generic System facade over dedicated storage, retention,
// and counting components, optional de-duplication of concurrent loads,
// and SHA-256-based key derivation for memoizing function results.
package cache
