package cache

import (
	"time"

	"github.com/bongtzeyaw/cachekit/evict"
)

// Default configuration values applied by New when the corresponding
// Config field is left zero.
const (
	// DefaultMaxSize is the capacity bound used when none is configured.
	DefaultMaxSize = 100

	// DefaultTTL is the entry lifetime used when none is configured.
	DefaultTTL = time.Hour
)

// Config configures a cache System.
//
// The zero value is usable: New fills in defaults for every field that
// is left unset.
type Config struct {
	// MaxSize is the maximum number of entries held at once.
	// Default: DefaultMaxSize. Negative values are rejected.
	MaxSize int

	// TTL is the lifetime applied to every entry, measured from its
	// most recent insertion. There is no per-entry override.
	// Default: DefaultTTL. Negative values are rejected.
	TTL time.Duration

	// Strategy selects the victim when an insert finds the cache full.
	// Default: evict.LRU.
	Strategy evict.Strategy

	// Logger receives hit, miss, and eviction events.
	// Default: NopEventLogger.
	Logger EventLogger

	// DedupeLoads collapses concurrent GetOrLoad calls for the same
	// missing key into a single loader invocation. Off by default:
	// without it, racing callers may each run their loader and the
	// last write wins.
	DedupeLoads bool
}

// Validate checks the configuration for values no code path can
// recover from. Zero fields are valid; they stand for the defaults.
func (c Config) Validate() error {
	if c.MaxSize < 0 {
		return ErrInvalidMaxSize
	}
	if c.TTL < 0 {
		return ErrInvalidTTL
	}
	return nil
}

// withDefaults returns a copy of c with unset fields filled in.
func (c Config) withDefaults() Config {
	if c.MaxSize == 0 {
		c.MaxSize = DefaultMaxSize
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	if c.Strategy == nil {
		c.Strategy = evict.LRU{}
	}
	if c.Logger == nil {
		c.Logger = NopEventLogger{}
	}
	return c
}
