package cache

import "context"

// Memoize wraps fn so that its results are cached by input.
//
// Keys are derived from scope and the call input via keyer; a nil keyer
// selects the DefaultKeyer. When key derivation fails the call falls
// through to fn directly, uncached. Errors returned by fn propagate to
// the caller and are never cached.
func Memoize[In any, V any](c *System[V], scope string, keyer Keyer, fn func(ctx context.Context, input In) (V, error)) func(ctx context.Context, input In) (V, error) {
	if keyer == nil {
		keyer = NewDefaultKeyer()
	}

	return func(ctx context.Context, input In) (V, error) {
		key, err := keyer.Key(scope, input)
		if err != nil {
			// No usable key, run uncached.
			return fn(ctx, input)
		}
		return c.GetOrLoad(ctx, key, func(ctx context.Context) (V, error) {
			return fn(ctx, input)
		})
	}
}
