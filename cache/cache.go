package cache

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/bongtzeyaw/cachekit/retention"
	"github.com/bongtzeyaw/cachekit/stats"
	"github.com/bongtzeyaw/cachekit/store"
)

// LoaderFunc produces the value for a single missing key.
type LoaderFunc[V any] func(ctx context.Context) (V, error)

// System is a bounded in-memory cache for values of type V.
//
// Contract:
// - Concurrency: all methods are safe for concurrent use. Each internal
//   component serializes its own state, but multi-step operations are not
//   atomic across components: two callers racing GetOrLoad on the same
//   missing key may both run their loader unless Config.DedupeLoads is
//   set, with the second write overwriting the first.
// - Context: ctx is handed through to the EventLogger and to loaders;
//   the cache itself never blocks on it.
// - Errors: lookups never fail; absence is (zero, false). Loader errors
//   propagate unmodified and are never cached.
//
// Expiration is lazy. An expired entry is removed by the next operation
// that touches its key; no background goroutine sweeps the cache.
type System[V any] struct {
	store     *store.Store[V]
	retention *retention.Manager
	counter   *stats.Counter
	logger    EventLogger

	dedupe bool
	loads  singleflight.Group
}

// New creates a cache System from cfg. Zero-valued Config fields take
// their documented defaults; negative MaxSize or TTL is rejected.
func New[V any](cfg Config) (*System[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	return &System[V]{
		store:     store.New[V](cfg.MaxSize),
		retention: retention.NewManager(cfg.TTL, cfg.Strategy),
		counter:   stats.NewCounter(),
		logger:    cfg.Logger,
		dedupe:    cfg.DedupeLoads,
	}, nil
}

// Get retrieves the value stored under key. Returns (zero, false) when
// the key is absent or its entry has expired; an expired entry is
// removed before the miss is reported.
func (s *System[V]) Get(ctx context.Context, key string) (V, bool) {
	s.purgeIfExpired(key)

	if value, ok := s.store.Get(key); ok {
		s.counter.RecordHit()
		s.retention.RecordAccess(key)
		s.logger.Hit(ctx, key)
		return value, true
	}

	s.counter.RecordMiss()
	s.logger.Miss(ctx, key)
	var zero V
	return zero, false
}

// GetOrLoad retrieves the value stored under key, invoking load to
// produce and store it on a miss. The miss is still counted; a failed
// load propagates its error and stores nothing.
func (s *System[V]) GetOrLoad(ctx context.Context, key string, load LoaderFunc[V]) (V, error) {
	var zero V
	if load == nil {
		return zero, ErrNilLoader
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	if !s.dedupe {
		return s.loadAndStore(ctx, key, load)
	}

	v, err, _ := s.loads.Do(key, func() (any, error) {
		// An earlier flight may have stored the value already.
		if value, ok := s.store.Get(key); ok && !s.retention.Expired(key) {
			return value, nil
		}
		value, err := s.loadAndStore(ctx, key, load)
		return value, err
	})
	if err != nil {
		return zero, err
	}
	return v.(V), nil
}

// Set stores value under key, evicting one entry first if the key is
// new and the cache is full. Setting a key always restarts its
// lifetime, whether or not it was already present.
func (s *System[V]) Set(ctx context.Context, key string, value V) {
	s.insert(ctx, key, value)
}

// Delete removes key from the cache. Returns true if an entry was
// removed, false if the key was not present.
func (s *System[V]) Delete(key string) bool {
	return s.remove(key)
}

// Clear removes every entry and resets the hit/miss totals.
func (s *System[V]) Clear() {
	s.store.Clear()
	s.retention.Clear()
	s.counter.Clear()
}

// Size reports the number of entries currently stored.
func (s *System[V]) Size() int {
	return s.store.Size()
}

// Stats captures a point-in-time snapshot of cache state. Fields are
// read one component at a time, so a snapshot taken under concurrent
// writes may be slightly inconsistent with itself.
func (s *System[V]) Stats() stats.Snapshot {
	return stats.Snapshot{
		Size:        s.store.Size(),
		MaxSize:     s.store.MaxSize(),
		Hits:        s.counter.Hits(),
		Misses:      s.counter.Misses(),
		HitRate:     s.counter.HitRate(),
		MemoryBytes: s.store.MemoryUsage(),
	}
}

// loadAndStore runs load and inserts its result on success.
func (s *System[V]) loadAndStore(ctx context.Context, key string, load LoaderFunc[V]) (V, error) {
	value, err := load(ctx)
	if err != nil {
		// Don't cache failures.
		var zero V
		return zero, err
	}
	s.insert(ctx, key, value)
	return value, nil
}

// insert is the capacity-aware write path shared by Set, GetOrLoad, and
// the batch operations.
func (s *System[V]) insert(ctx context.Context, key string, value V) {
	if !s.store.Has(key) && s.store.CapacityReached() {
		s.evictOne(ctx)
	}
	s.store.Set(key, value)
	s.retention.RecordCreation(key)
}

// remove deletes key from storage and retention. A read racing between
// the two deletions sees a plain miss, which is harmless.
func (s *System[V]) remove(key string) bool {
	removed := s.store.Delete(key)
	s.retention.Delete(key)
	return removed
}

// purgeIfExpired removes key if its entry has outlived the TTL.
func (s *System[V]) purgeIfExpired(key string) {
	if s.retention.Expired(key) {
		s.remove(key)
	}
}

// evictOne removes the victim chosen by the eviction strategy. It does
// nothing when the cache is empty.
func (s *System[V]) evictOne(ctx context.Context) {
	victim, ok := s.retention.Victim()
	if !ok {
		return
	}
	s.remove(victim)
	s.logger.Evict(ctx, victim)
}
