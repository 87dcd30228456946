package cache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrInvalidMaxSize is returned when a configured capacity is negative.
	ErrInvalidMaxSize = errors.New("cache: max size must be positive")

	// ErrInvalidTTL is returned when a configured TTL is negative.
	ErrInvalidTTL = errors.New("cache: ttl must be positive")

	// ErrNilLoader is returned when GetOrLoad is called without a loader.
	ErrNilLoader = errors.New("cache: loader is nil")
)
