package cache

import "context"

// BatchLoaderFunc produces values for keys a batch lookup could not
// resolve. It is invoked at most once per GetMultiple call, with every
// missing key, and returns a value for each key it can resolve.
type BatchLoaderFunc[V any] func(ctx context.Context, missing []string) (map[string]V, error)

// GetMultiple looks up every key in keys and returns the values found.
// Duplicate keys are considered once. Hit and miss totals are updated
// in bulk, once per batch, rather than per key.
//
// When load is non-nil it is invoked once with all missing keys; the
// values it returns are stored through the same capacity-aware path as
// SetMultiple and included in the result. Keys the loader does not
// resolve stay absent from the result. On loader failure the values
// already found are returned alongside the error and nothing from the
// failed load is stored.
func (s *System[V]) GetMultiple(ctx context.Context, keys []string, load BatchLoaderFunc[V]) (map[string]V, error) {
	found := make(map[string]V, len(keys))
	var missing []string

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		s.purgeIfExpired(key)
		if value, ok := s.store.Get(key); ok {
			s.retention.RecordAccess(key)
			s.logger.Hit(ctx, key)
			found[key] = value
		} else {
			s.logger.Miss(ctx, key)
			missing = append(missing, key)
		}
	}

	s.counter.RecordHits(len(found))
	s.counter.RecordMisses(len(missing))

	if load == nil || len(missing) == 0 {
		return found, nil
	}

	loaded, err := load(ctx, missing)
	if err != nil {
		return found, err
	}

	resolved := make(map[string]V, len(loaded))
	for _, key := range missing {
		if value, ok := loaded[key]; ok {
			resolved[key] = value
		}
	}
	s.setBatch(ctx, resolved)

	for key, value := range resolved {
		found[key] = value
	}
	return found, nil
}

// SetMultiple stores every entry in entries. Entries for new keys pass
// through the same eviction rules as Set; entries for present keys
// overwrite in place. Every stored key has its lifetime restarted.
func (s *System[V]) SetMultiple(ctx context.Context, entries map[string]V) {
	s.setBatch(ctx, entries)
}

// setBatch inserts entries through the capacity-aware write path,
// evicting ahead of the writes when the batch would overflow.
func (s *System[V]) setBatch(ctx context.Context, entries map[string]V) {
	if len(entries) == 0 {
		return
	}

	newKeys := 0
	for key := range entries {
		if !s.store.Has(key) {
			newKeys++
		}
	}
	if over := newKeys - (s.store.MaxSize() - s.store.Size()); over > 0 {
		for i := 0; i < over; i++ {
			s.evictOne(ctx)
		}
	}

	// insert re-checks capacity per key, which matters when the batch
	// itself is larger than the whole cache.
	for key, value := range entries {
		s.insert(ctx, key, value)
	}
}
