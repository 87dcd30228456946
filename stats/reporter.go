package stats

import (
	"fmt"
	"io"
	"strings"
)

// Snapshot captures cache state at a single point in time.
//
// A Snapshot is a plain value: the fields are not updated after capture,
// and copying one is cheap.
type Snapshot struct {
	// Size is the number of entries currently stored.
	Size int
	// MaxSize is the configured capacity bound.
	MaxSize int
	// Hits is the number of successful lookups recorded.
	Hits uint64
	// Misses is the number of failed lookups recorded.
	Misses uint64
	// HitRate is the hit percentage in [0, 100].
	HitRate float64
	// MemoryBytes is the estimated memory footprint of stored entries.
	MemoryBytes int
}

// Render formats the snapshot as a human-readable block:
//
//	Cache Statistics:
//	  Size: 2/100
//	  Hits: 4
//	  Misses: 2
//	  Hit Rate: 66.67%
//	  Estimated Memory: 42 bytes
//
// The rate is rendered with two decimal places.
func Render(s Snapshot) string {
	var b strings.Builder
	b.WriteString("Cache Statistics:\n")
	fmt.Fprintf(&b, "  Size: %d/%d\n", s.Size, s.MaxSize)
	fmt.Fprintf(&b, "  Hits: %d\n", s.Hits)
	fmt.Fprintf(&b, "  Misses: %d\n", s.Misses)
	fmt.Fprintf(&b, "  Hit Rate: %.2f%%\n", s.HitRate)
	fmt.Fprintf(&b, "  Estimated Memory: %d bytes", s.MemoryBytes)
	return b.String()
}

// Write renders the snapshot to w, followed by a trailing newline.
func Write(w io.Writer, s Snapshot) error {
	_, err := io.WriteString(w, Render(s)+"\n")
	return err
}
