package evict

import (
	"testing"
	"time"
)

func TestLRU_Victim(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		times    map[string]time.Time
		wantKey  string
		wantPick bool
	}{
		{
			name:     "empty map",
			times:    map[string]time.Time{},
			wantKey:  "",
			wantPick: false,
		},
		{
			name:     "single key",
			times:    map[string]time.Time{"only": base},
			wantKey:  "only",
			wantPick: true,
		},
		{
			name: "oldest wins",
			times: map[string]time.Time{
				"a": base.Add(2 * time.Second),
				"b": base,
				"c": base.Add(1 * time.Second),
			},
			wantKey:  "b",
			wantPick: true,
		},
		{
			name: "tie broken by smaller key",
			times: map[string]time.Time{
				"zz": base,
				"aa": base,
				"mm": base,
			},
			wantKey:  "aa",
			wantPick: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := LRU{}.Victim(tt.times)
			if ok != tt.wantPick {
				t.Fatalf("Victim() ok = %v, want %v", ok, tt.wantPick)
			}
			if key != tt.wantKey {
				t.Errorf("Victim() = %q, want %q", key, tt.wantKey)
			}
		})
	}
}

func TestLRU_Victim_DoesNotMutateInput(t *testing.T) {
	base := time.Now()
	times := map[string]time.Time{
		"a": base,
		"b": base.Add(time.Second),
	}

	_, _ = LRU{}.Victim(times)

	if len(times) != 2 {
		t.Fatalf("input map length changed: got %d, want 2", len(times))
	}
	if !times["a"].Equal(base) || !times["b"].Equal(base.Add(time.Second)) {
		t.Error("input map values changed")
	}
}

func TestMRU_Victim(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		times    map[string]time.Time
		wantKey  string
		wantPick bool
	}{
		{
			name:     "empty map",
			times:    map[string]time.Time{},
			wantKey:  "",
			wantPick: false,
		},
		{
			name: "newest wins",
			times: map[string]time.Time{
				"a": base.Add(2 * time.Second),
				"b": base,
				"c": base.Add(1 * time.Second),
			},
			wantKey:  "a",
			wantPick: true,
		},
		{
			name: "tie broken by smaller key",
			times: map[string]time.Time{
				"y": base,
				"x": base,
			},
			wantKey:  "x",
			wantPick: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := MRU{}.Victim(tt.times)
			if ok != tt.wantPick {
				t.Fatalf("Victim() ok = %v, want %v", ok, tt.wantPick)
			}
			if key != tt.wantKey {
				t.Errorf("Victim() = %q, want %q", key, tt.wantKey)
			}
		})
	}
}

func TestStrategyFunc_Victim(t *testing.T) {
	fn := StrategyFunc(func(times map[string]time.Time) (string, bool) {
		for key := range times {
			return key, true
		}
		return "", false
	})

	key, ok := fn.Victim(map[string]time.Time{"only": time.Now()})
	if !ok || key != "only" {
		t.Errorf("Victim() = (%q, %v), want (%q, true)", key, ok, "only")
	}

	if _, ok := fn.Victim(nil); ok {
		t.Error("Victim() on nil map should report no victim")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Strategy
		wantErr bool
	}{
		{"lru lowercase", "lru", LRU{}, false},
		{"lru uppercase", "LRU", LRU{}, false},
		{"mru", "mru", MRU{}, false},
		{"empty defaults to lru", "", LRU{}, false},
		{"unknown", "clock", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %T, want %T", tt.input, got, tt.want)
			}
		})
	}
}
