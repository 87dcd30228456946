// Package stats provides hit/miss accounting for cache lookups.
//
// It provides a Counter for recording lookup outcomes, a Snapshot of
// cache state at a point in time, and plain-text rendering of snapshots
// for logs and debug output.
package stats
