package cache

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// EventLogger receives cache lifecycle events from a System.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Blocking: calls run inline on the caller's goroutine; implementations
//   should return promptly.
// - Errors: events are fire-and-forget; implementations must not panic.
type EventLogger interface {
	// Hit is called when a lookup finds a live entry for key.
	Hit(ctx context.Context, key string)

	// Miss is called when a lookup finds no live entry for key.
	Miss(ctx context.Context, key string)

	// Evict is called when key is removed to stay within capacity.
	Evict(ctx context.Context, key string)
}

// NopEventLogger discards all events. It is the default logger.
type NopEventLogger struct{}

func (NopEventLogger) Hit(context.Context, string)   {}
func (NopEventLogger) Miss(context.Context, string)  {}
func (NopEventLogger) Evict(context.Context, string) {}

// LineLogger writes one plain-text line per event:
//
//	[CACHE HIT] Key: <key>
//	[CACHE MISS] Key: <key>
//	[CACHE EVICT] Key: <key>
type LineLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLineLogger creates a LineLogger writing to w.
func NewLineLogger(w io.Writer) *LineLogger {
	return &LineLogger{w: w}
}

// Hit writes a cache hit line for key.
func (l *LineLogger) Hit(_ context.Context, key string) {
	l.print("[CACHE HIT] Key: " + key)
}

// Miss writes a cache miss line for key.
func (l *LineLogger) Miss(_ context.Context, key string) {
	l.print("[CACHE MISS] Key: " + key)
}

// Evict writes an eviction line for key.
func (l *LineLogger) Evict(_ context.Context, key string) {
	l.print("[CACHE EVICT] Key: " + key)
}

func (l *LineLogger) print(line string) {
	l.mu.Lock()
	fmt.Fprintln(l.w, line)
	l.mu.Unlock()
}

// Ensure both loggers implement EventLogger
var (
	_ EventLogger = NopEventLogger{}
	_ EventLogger = (*LineLogger)(nil)
)
